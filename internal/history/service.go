package history

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"github.com/solvault/solvault/internal/pkg/logger"
)

const (
	defaultWindow = 20
	defaultFanOut = 8
)

// Option configures a Service.
type Option func(*Service)

// WithWindow overrides how many recent signatures are fetched per request.
func WithWindow(n int) Option {
	return func(s *Service) {
		s.window = n
	}
}

// WithFanOut overrides the number of concurrent transaction lookups.
func WithFanOut(n int) Option {
	return func(s *Service) {
		s.fanOut = n
	}
}

// Service fetches an address's recent transactions and classifies them. Every
// request recomputes from the ledger; nothing is cached.
type Service struct {
	ledger Ledger
	window int
	fanOut int
	now    func() time.Time
}

// NewService creates a history Service backed by the given ledger client.
func NewService(ledger Ledger, opts ...Option) *Service {
	s := &Service{
		ledger: ledger,
		window: defaultWindow,
		fanOut: defaultFanOut,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// History returns the classified records of the address's most recent
// transactions, newest first. Per-signature lookups run concurrently under a
// bounded fan-out; a lookup that fails drops that single entry rather than
// failing the request.
func (s *Service) History(ctx context.Context, address solana.PublicKey) ([]Record, error) {
	signatures, err := s.ledger.Signatures(ctx, address, s.window)
	if err != nil {
		return nil, fmt.Errorf("fetching signatures for %s: %w", address, err)
	}

	fetched := make([]*RawTransaction, len(signatures))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOut)
	for i, signature := range signatures {
		g.Go(func() error {
			tx, err := s.ledger.Transaction(groupCtx, signature)
			if err != nil {
				logger.Warn(groupCtx, "dropping history entry",
					"signature", signature.String(),
					"error", err,
				)
				return nil
			}

			fetched[i] = &tx
			return nil
		})
	}
	_ = g.Wait()

	txs := make([]RawTransaction, 0, len(fetched))
	for _, tx := range fetched {
		if tx != nil {
			txs = append(txs, *tx)
		}
	}

	return Classify(address, txs, s.now()), nil
}
