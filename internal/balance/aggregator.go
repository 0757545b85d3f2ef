// Package balance computes per-token holdings and their USD valuation for an
// address. Lookups run concurrently per registry token; a single failing
// lookup degrades that token to zero instead of failing the aggregation.
package balance

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/solvault/solvault/internal/pkg/logger"
	"github.com/solvault/solvault/internal/token"
)

const defaultFanOut = 8

// TokenBalance is one token's holding for an address. Degraded marks entries
// whose lookup failed and whose amount is a zero stand-in rather than a
// confirmed balance.
type TokenBalance struct {
	Token          token.Token
	Amount         decimal.Decimal
	ValueUSD       decimal.Decimal
	Degraded       bool
	DegradedReason string
}

// Summary is the full aggregation result for an address. Tokens follow the
// registry's configured order. TotalUSD is rounded to two decimal places
// once, after summing the unrounded per-token values.
type Summary struct {
	Tokens   []TokenBalance
	TotalUSD decimal.Decimal
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithFanOut overrides the number of concurrent balance lookups.
func WithFanOut(n int) Option {
	return func(a *Aggregator) {
		a.fanOut = n
	}
}

// Aggregator computes balance summaries against a ledger client and the
// shared token registry.
type Aggregator struct {
	ledger   Ledger
	registry *token.Registry
	fanOut   int
}

// NewAggregator creates an Aggregator for the given ledger and registry.
func NewAggregator(ledger Ledger, registry *token.Registry, opts ...Option) *Aggregator {
	a := &Aggregator{
		ledger:   ledger,
		registry: registry,
		fanOut:   defaultFanOut,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Aggregate fetches every registry token's balance for owner and values it at
// the token's reference price. Failed lookups produce degraded zero entries;
// the call fails only when the surrounding request is canceled.
func (a *Aggregator) Aggregate(ctx context.Context, owner solana.PublicKey) (Summary, error) {
	tokens := a.registry.Tokens()
	balances := make([]TokenBalance, len(tokens))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.fanOut)
	for i, tok := range tokens {
		g.Go(func() error {
			balances[i] = a.fetchOne(groupCtx, owner, tok)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.ValueUSD)
	}

	return Summary{
		Tokens:   balances,
		TotalUSD: total.Round(2),
	}, nil
}

// fetchOne looks up a single token's balance. Any failure degrades the entry
// to a zero balance with the failure recorded.
func (a *Aggregator) fetchOne(ctx context.Context, owner solana.PublicKey, tok token.Token) TokenBalance {
	baseUnits, err := a.lookup(ctx, owner, tok)
	if err != nil {
		logger.Warn(ctx, "degrading token balance to zero",
			"owner", owner.String(),
			"token", tok.Symbol,
			"error", err,
		)
		return TokenBalance{
			Token:          tok,
			Amount:         decimal.Zero,
			ValueUSD:       decimal.Zero,
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}

	amount := decimal.NewFromUint64(baseUnits).Shift(-int32(tok.Decimals))
	return TokenBalance{
		Token:    tok,
		Amount:   amount,
		ValueUSD: amount.Mul(tok.PriceUSD),
	}
}

func (a *Aggregator) lookup(ctx context.Context, owner solana.PublicKey, tok token.Token) (uint64, error) {
	if tok.Native {
		return a.ledger.NativeBalance(ctx, owner)
	}

	account, _, err := solana.FindAssociatedTokenAddress(owner, tok.Mint)
	if err != nil {
		return 0, err
	}

	return a.ledger.TokenBalance(ctx, account)
}
