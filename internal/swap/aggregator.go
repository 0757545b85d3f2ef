package swap

import (
	"context"
	"encoding/json"

	"github.com/gagliardetto/solana-go"
)

// Aggregator is the external quote service. Given a previously obtained quote
// and the user's public address, it returns a base64-encoded unsigned
// transaction blob that executes the quoted route.
type Aggregator interface {
	SwapTransaction(ctx context.Context, quote json.RawMessage, user solana.PublicKey) (string, error)
}
