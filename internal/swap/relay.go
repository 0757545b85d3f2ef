// Package swap exchanges an aggregator quote for an executable transaction.
// The aggregator is a black box: the relay forwards the quote untouched,
// decodes the returned blob, and hands the transaction on for signing and
// submission.
package swap

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	// ErrQuoteServiceUnavailable indicates the aggregator could not produce
	// a swap transaction for the quote.
	ErrQuoteServiceUnavailable = errors.New("quote service unavailable")

	// ErrMalformedTransactionBlob indicates the aggregator's response did
	// not decode into a valid transaction.
	ErrMalformedTransactionBlob = errors.New("malformed transaction blob")
)

// Relay prepares aggregator swaps for signing.
type Relay struct {
	aggregator Aggregator
}

// NewRelay creates a Relay backed by the given aggregator client.
func NewRelay(aggregator Aggregator) *Relay {
	return &Relay{
		aggregator: aggregator,
	}
}

// Prepare forwards the quote to the aggregator and decodes the returned blob
// into an unsigned transaction. The quote itself is treated opaquely; only
// the aggregator interprets it.
func (r *Relay) Prepare(ctx context.Context, quote json.RawMessage, user solana.PublicKey) (*solana.Transaction, error) {
	blob, err := r.aggregator.SwapTransaction(ctx, quote, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuoteServiceUnavailable, err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTransactionBlob, err)
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTransactionBlob, err)
	}

	return tx, nil
}
