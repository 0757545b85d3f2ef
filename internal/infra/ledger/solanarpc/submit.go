package solanarpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solvault/solvault/internal/submit"
)

// latestBlockhashResponse is the "value" of a getLatestBlockhash response.
type latestBlockhashResponse struct {
	Blockhash            string `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

// signatureStatusResponse is one entry of a getSignatureStatuses "value"
// array. A nil entry means the node does not know the signature.
type signatureStatusResponse struct {
	ConfirmationStatus string          `json:"confirmationStatus"`
	Err                json.RawMessage `json:"err"`
}

// LatestBlockhash fetches a recent blockhash and its expiry boundary.
func (c *client) LatestBlockhash(ctx context.Context) (submit.Blockhash, error) {
	var value latestBlockhashResponse
	if err := c.fetchValue(ctx, "getLatestBlockhash", &value); err != nil {
		return submit.Blockhash{}, err
	}

	hash, err := solana.HashFromBase58(value.Blockhash)
	if err != nil {
		return submit.Blockhash{}, fmt.Errorf("parsing blockhash %q: %w", value.Blockhash, err)
	}

	return submit.Blockhash{
		Hash:                 hash,
		LastValidBlockHeight: value.LastValidBlockHeight,
	}, nil
}

// BlockHeight fetches the node's current block height.
func (c *client) BlockHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "getBlockHeight")
	if err != nil {
		return 0, err
	}

	var height uint64
	return height, json.Unmarshal(data, &height)
}

// SendTransaction relays a signed transaction in base64 form.
func (c *client) SendTransaction(ctx context.Context, tx *solana.Transaction, opts submit.SendOptions) (solana.Signature, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("serializing transaction: %w", err)
	}

	cfg := map[string]any{
		"encoding":      "base64",
		"skipPreflight": opts.SkipPreflight,
	}
	if opts.MaxRetries != nil {
		cfg["maxRetries"] = *opts.MaxRetries
	}

	data, err := c.conn.Fetch(ctx, "sendTransaction", base64.StdEncoding.EncodeToString(raw), cfg)
	if err != nil {
		return solana.Signature{}, err
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return solana.Signature{}, err
	}

	signature, err := solana.SignatureFromBase58(encoded)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("parsing signature %q: %w", encoded, err)
	}

	return signature, nil
}

// SignatureStatus fetches the confirmation state of a signature, searching
// the node's full transaction history.
func (c *client) SignatureStatus(ctx context.Context, signature solana.Signature) (submit.SignatureStatus, error) {
	var statuses []*signatureStatusResponse
	err := c.fetchValue(ctx, "getSignatureStatuses",
		&statuses,
		[]string{signature.String()},
		map[string]any{"searchTransactionHistory": true},
	)
	if err != nil {
		return submit.SignatureStatus{}, err
	}

	if len(statuses) == 0 || statuses[0] == nil {
		return submit.SignatureStatus{}, nil
	}

	status := statuses[0]
	return submit.SignatureStatus{
		Found:     true,
		Confirmed: status.ConfirmationStatus == "confirmed" || status.ConfirmationStatus == "finalized",
		Failed:    isJSONValue(status.Err),
	}, nil
}

// isJSONValue reports whether raw holds a concrete value rather than being
// absent or JSON null.
func isJSONValue(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
