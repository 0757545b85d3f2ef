package transfer

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Ledger defines the read-only ledger lookups the builder needs. No mutation
// happens until the built transaction is submitted.
type Ledger interface {
	// TokenAccountExists reports whether the given token account is present
	// on chain. It is used to decide whether the recipient's associated
	// token account must be created as part of the transfer.
	TokenAccountExists(ctx context.Context, account solana.PublicKey) (bool, error)

	// NativeBalance returns the owner's base-currency balance in base units
	// (lamports).
	NativeBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)

	// TokenBalance returns the base-unit balance held by the given token
	// account. A missing account yields a zero balance, not an error.
	TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
}
