package solanarpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/solvault/solvault/internal/pkg/transport/jsonrpc"
)

// rpcContextValue is the common {"context": ..., "value": ...} envelope most
// Solana RPC responses use.
type rpcContextValue struct {
	Value json.RawMessage `json:"value"`
}

// tokenAmountResponse is the "value" of a getTokenAccountBalance response.
type tokenAmountResponse struct {
	Amount   string `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

var jsonNull = []byte("null")

func (c *client) fetchValue(ctx context.Context, method string, out any, params ...any) error {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return err
	}

	var envelope rpcContextValue
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	return json.Unmarshal(envelope.Value, out)
}

// NativeBalance fetches the owner's lamport balance.
func (c *client) NativeBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	var lamports uint64
	if err := c.fetchValue(ctx, "getBalance", &lamports, owner.String()); err != nil {
		return 0, err
	}

	return lamports, nil
}

// TokenBalance fetches a token account's balance in base units. The node
// answers a missing token account with an RPC error, which maps to a zero
// balance here: an account that was never created holds nothing.
func (c *client) TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	var value tokenAmountResponse
	err := c.fetchValue(ctx, "getTokenAccountBalance", &value, account.String())
	if err != nil {
		if errors.Is(err, jsonrpc.ErrProviderReturnedError) {
			return 0, nil
		}
		return 0, err
	}

	// The node reports amounts as decimal strings.
	amount, err := strconv.ParseUint(value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing token amount %q: %w", value.Amount, err)
	}

	return amount, nil
}

// TokenAccountExists reports whether the given account exists on chain.
func (c *client) TokenAccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	data, err := c.conn.Fetch(ctx, "getAccountInfo", account.String(), map[string]any{
		"encoding": "base64",
	})
	if err != nil {
		return false, err
	}

	var envelope rpcContextValue
	if err := json.Unmarshal(data, &envelope); err != nil {
		return false, err
	}

	return len(envelope.Value) > 0 && !bytes.Equal(envelope.Value, jsonNull), nil
}
