package history

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Ledger defines the read-only network operations the history service needs.
type Ledger interface {
	// Signatures fetches the most recent transaction signatures involving
	// address, newest first, capped at limit.
	Signatures(ctx context.Context, address solana.PublicKey, limit int) ([]solana.Signature, error)

	// Transaction fetches one historical transaction in its parsed form.
	Transaction(ctx context.Context, signature solana.Signature) (RawTransaction, error)
}
