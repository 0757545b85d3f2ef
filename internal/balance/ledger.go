package balance

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Ledger defines the read-only balance lookups the aggregator needs.
type Ledger interface {
	// NativeBalance fetches the owner's base-currency balance in base units.
	NativeBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)

	// TokenBalance fetches a token account's balance in base units. A token
	// account that does not exist yields a zero balance, not an error.
	TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
}
