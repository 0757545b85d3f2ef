// Package postgres implements the wallet record store against PostgreSQL.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type client struct {
	pool *pgxpool.Pool
}

// Close releases the underlying connection pool.
func (c *client) Close() {
	c.pool.Close()
}

// NewClient connects to PostgreSQL and verifies the connection with a ping.
func NewClient(ctx context.Context, dsn string) (*client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &client{
		pool: pool,
	}, nil
}
