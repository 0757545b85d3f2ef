package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/solvault/solvault/internal/address"
	"github.com/solvault/solvault/internal/signing"
)

// WalletByUser implements the signing.WalletStore interface. Each user owns
// exactly one wallet row, created at account provisioning time; this layer
// only ever reads it.
func (c *client) WalletByUser(ctx context.Context, userID string) (signing.Wallet, error) {
	const query = `
        SELECT public_address, secret_key
        FROM wallets
        WHERE user_id = $1`

	var rawAddress, secretKey string
	if err := c.pool.QueryRow(ctx, query, userID).Scan(&rawAddress, &secretKey); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return signing.Wallet{}, fmt.Errorf("%w: user %s", signing.ErrWalletNotFound, userID)
		}
		return signing.Wallet{}, err
	}

	walletAddress, err := address.Parse(rawAddress)
	if err != nil {
		return signing.Wallet{}, fmt.Errorf("stored address for user %s: %w", userID, err)
	}

	return signing.Wallet{
		OwnerID:   userID,
		Address:   walletAddress,
		SecretKey: secretKey,
	}, nil
}

// Compile-time assertion that *client satisfies the signing.WalletStore interface
var _ signing.WalletStore = new(client)
