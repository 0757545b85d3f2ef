package submit

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Blockhash is a recent blockhash paired with the last block height at which
// a transaction referencing it is still accepted by the network.
type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}

// SignatureStatus is the network's view of a previously submitted signature.
type SignatureStatus struct {
	// Found reports whether the network knows the signature at all.
	Found bool
	// Confirmed reports whether the transaction reached at least the
	// confirmed commitment level.
	Confirmed bool
	// Failed reports whether the transaction landed with an execution error.
	Failed bool
}

// Ledger defines the network operations required to submit a signed
// transaction and track it to a terminal state.
type Ledger interface {
	// LatestBlockhash fetches a recent blockhash and its expiry boundary.
	LatestBlockhash(ctx context.Context) (Blockhash, error)

	// BlockHeight fetches the network's current block height.
	BlockHeight(ctx context.Context) (uint64, error)

	// SendTransaction relays a fully signed transaction to the network and
	// returns its signature.
	SendTransaction(ctx context.Context, tx *solana.Transaction, opts SendOptions) (solana.Signature, error)

	// SignatureStatus fetches the confirmation state of a signature.
	SignatureStatus(ctx context.Context, signature solana.Signature) (SignatureStatus, error)
}
