// Package submit relays signed transactions to the ledger network and waits
// for a terminal confirmation state. A submission is tracked until it is
// confirmed, fails on chain, or its blockhash expires, whichever comes first.
package submit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/solvault/solvault/internal/pkg/resilience/retry"
)

var (
	// ErrSubmissionFailed indicates that the network rejected the
	// transaction, or that it landed with an execution error.
	ErrSubmissionFailed = errors.New("transaction submission failed")

	// ErrTimedOut indicates that the transaction's blockhash expired before
	// the network confirmed it. The transaction may still land; the caller
	// must treat the outcome as unknown.
	ErrTimedOut = errors.New("transaction confirmation timed out")
)

// Status is the terminal state of a submission.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timedOut"
)

// SendOptions control how a transaction is relayed to the network.
type SendOptions struct {
	// SkipPreflight disables the node's simulation step before relay. Used
	// for aggregator-built transactions whose quotes go stale under the
	// extra round trip.
	SkipPreflight bool

	// MaxRetries caps the node-side resubmission of the transaction to the
	// leader. Nil leaves the node's default in place.
	MaxRetries *uint

	// LastValidBlockHeight is the expiry boundary of the transaction's
	// blockhash. When zero, the submitter fetches a fresh boundary at
	// submission time.
	LastValidBlockHeight uint64
}

// Result is the outcome of a tracked submission.
type Result struct {
	Signature   solana.Signature
	Status      Status
	ExplorerURL string
}

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultExplorerBase = "https://solscan.io"
)

// Option configures a Submitter.
type Option func(*Submitter)

// WithPollInterval overrides the confirmation polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(s *Submitter) {
		s.pollInterval = d
	}
}

// WithExplorerBase overrides the base URL used to format explorer links.
func WithExplorerBase(base string) Option {
	return func(s *Submitter) {
		s.explorerBase = strings.TrimRight(base, "/")
	}
}

// WithSendRetry overrides the retry policy applied to the relay call.
func WithSendRetry(r retry.Retry) Option {
	return func(s *Submitter) {
		s.retrier = r
	}
}

// Submitter relays signed transactions and polls the network until each
// reaches a terminal state.
type Submitter struct {
	ledger       Ledger
	retrier      retry.Retry
	pollInterval time.Duration
	explorerBase string
}

// New creates a Submitter backed by the given ledger client.
func New(ledger Ledger, opts ...Option) *Submitter {
	s := &Submitter{
		ledger:       ledger,
		retrier:      retry.New(retry.WithAttempts(2), retry.WithDelay(500*time.Millisecond)),
		pollInterval: defaultPollInterval,
		explorerBase: defaultExplorerBase,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LatestBlockhash exposes the ledger's recent blockhash so callers can stamp
// it on a transaction before signing.
func (s *Submitter) LatestBlockhash(ctx context.Context) (Blockhash, error) {
	return s.ledger.LatestBlockhash(ctx)
}

// Submit relays tx to the network and blocks until the transaction reaches a
// terminal state or ctx is canceled. On ErrSubmissionFailed and ErrTimedOut
// the returned Result still carries the signature and terminal status.
func (s *Submitter) Submit(ctx context.Context, tx *solana.Transaction, opts SendOptions) (Result, error) {
	boundary := opts.LastValidBlockHeight
	if boundary == 0 {
		bh, err := s.ledger.LatestBlockhash(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("fetching expiry boundary: %w", err)
		}
		boundary = bh.LastValidBlockHeight
	}

	var signature solana.Signature
	err := s.retrier.Execute(ctx, func() error {
		var err error
		signature, err = s.ledger.SendTransaction(ctx, tx, opts)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	return s.confirm(ctx, signature, boundary)
}

// confirm polls the signature's status until it reaches a terminal state or
// the block height passes boundary. Transient status and height lookup errors
// are tolerated; the boundary is the only hard deadline besides ctx.
func (s *Submitter) confirm(ctx context.Context, signature solana.Signature, boundary uint64) (Result, error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		status, err := s.ledger.SignatureStatus(ctx, signature)
		if err == nil && status.Found {
			if status.Failed {
				return Result{
					Signature: signature,
					Status:    StatusFailed,
				}, fmt.Errorf("%w: transaction failed on chain", ErrSubmissionFailed)
			}
			if status.Confirmed {
				return Result{
					Signature:   signature,
					Status:      StatusConfirmed,
					ExplorerURL: s.ExplorerURL(signature),
				}, nil
			}
		}

		height, err := s.ledger.BlockHeight(ctx)
		if err == nil && height > boundary {
			return Result{
				Signature: signature,
				Status:    StatusTimedOut,
			}, ErrTimedOut
		}

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// ExplorerURL formats the explorer link for a signature. Pure formatting, no
// network access.
func (s *Submitter) ExplorerURL(signature solana.Signature) string {
	return fmt.Sprintf("%s/tx/%s", s.explorerBase, signature.String())
}
