// Package rest exposes the wallet operations over HTTP. Each route is
// stateless: the only cross-request state is the session lookup that resolves
// the authenticated user.
package rest

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/solvault/solvault/internal/balance"
	"github.com/solvault/solvault/internal/history"
	"github.com/solvault/solvault/internal/submit"
)

// WalletOps is the orchestrating service the routes call into.
type WalletOps interface {
	Send(ctx context.Context, userID, toAddress, mint string, amount decimal.Decimal) (submit.Result, error)
	Swap(ctx context.Context, userID string, quote json.RawMessage) (submit.Result, error)
	TokenBalances(ctx context.Context, rawAddress string) (balance.Summary, error)
	History(ctx context.Context, rawAddress string) ([]history.Record, error)
}

// Authenticator resolves a session token into a user id.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionToken string) (string, error)
}
