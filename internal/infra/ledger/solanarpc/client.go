// Package solanarpc implements the domain ledger interfaces against a Solana
// JSON-RPC node. One client serves every consumer: transfer existence checks,
// balance lookups, submission, and history fetches.
package solanarpc

import (
	"github.com/solvault/solvault/internal/balance"
	"github.com/solvault/solvault/internal/history"
	"github.com/solvault/solvault/internal/pkg/transport/jsonrpc"
	"github.com/solvault/solvault/internal/submit"
	"github.com/solvault/solvault/internal/token"
	"github.com/solvault/solvault/internal/transfer"
)

// client talks to a Solana node via a JSON-RPC connection. The token registry
// resolves mint addresses into symbols when normalizing history records.
type client struct {
	conn     jsonrpc.Client
	registry *token.Registry
}

// Compile-time checks that client serves every domain ledger interface.
var (
	_ transfer.Ledger = (*client)(nil)
	_ submit.Ledger   = (*client)(nil)
	_ balance.Ledger  = (*client)(nil)
	_ history.Ledger  = (*client)(nil)
)

// NewClient creates a Solana ledger client over the given JSON-RPC connection.
func NewClient(conn jsonrpc.Client, registry *token.Registry) *client {
	return &client{
		conn:     conn,
		registry: registry,
	}
}
