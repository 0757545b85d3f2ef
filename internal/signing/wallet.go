package signing

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

// ErrWalletNotFound indicates that no wallet record exists for the user.
var ErrWalletNotFound = errors.New("wallet not found")

// Wallet is the stored keypair record of a single user. SecretKey holds the
// raw persisted key material; it is only ever parsed inside a signing
// operation and must never be logged or written to a response.
type Wallet struct {
	OwnerID   string
	Address   solana.PublicKey
	SecretKey string
}

// WalletStore defines the lookup contract against the key/record store.
// Exactly one wallet exists per user; it is created at account provisioning
// time outside this service and never mutated here.
type WalletStore interface {
	// WalletByUser returns the wallet owned by the given user id, or
	// ErrWalletNotFound when the user has no wallet.
	WalletByUser(ctx context.Context, userID string) (Wallet, error)
}
