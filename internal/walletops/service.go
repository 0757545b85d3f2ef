// Package walletops orchestrates the wallet's four user-facing operations.
// It owns no domain logic of its own: it parses and validates inputs, fetches
// the acting wallet, and sequences the build, sign, and submit collaborators.
package walletops

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/solvault/solvault/internal/address"
	"github.com/solvault/solvault/internal/balance"
	"github.com/solvault/solvault/internal/history"
	"github.com/solvault/solvault/internal/pkg/logger"
	"github.com/solvault/solvault/internal/signing"
	"github.com/solvault/solvault/internal/submit"
	"github.com/solvault/solvault/internal/token"
	"github.com/solvault/solvault/internal/transfer"
)

// swapSendMaxRetries caps node-side resubmission of aggregator-built
// transactions, whose quotes go stale quickly.
const swapSendMaxRetries uint = 2

// TransferBuilder constructs the instruction sequence of a transfer.
type TransferBuilder interface {
	Build(ctx context.Context, sender, recipient solana.PublicKey, tok token.Token, amount decimal.Decimal) (transfer.BuiltTransaction, error)
}

// SwapRelay exchanges an aggregator quote for an unsigned transaction.
type SwapRelay interface {
	Prepare(ctx context.Context, quote json.RawMessage, user solana.PublicKey) (*solana.Transaction, error)
}

// Signer resolves the acting wallet and signs transactions with it.
type Signer interface {
	Wallet(ctx context.Context, userID string) (signing.Wallet, error)
	Sign(ctx context.Context, tx *solana.Transaction, w signing.Wallet) error
}

// Submitter relays signed transactions and tracks them to a terminal state.
type Submitter interface {
	LatestBlockhash(ctx context.Context) (submit.Blockhash, error)
	Submit(ctx context.Context, tx *solana.Transaction, opts submit.SendOptions) (submit.Result, error)
}

// BalanceAggregator computes an address's per-token balance summary.
type BalanceAggregator interface {
	Aggregate(ctx context.Context, owner solana.PublicKey) (balance.Summary, error)
}

// HistoryService fetches and classifies an address's recent transactions.
type HistoryService interface {
	History(ctx context.Context, addr solana.PublicKey) ([]history.Record, error)
}

// Service wires the wallet operations together.
type Service struct {
	registry  *token.Registry
	builder   TransferBuilder
	relay     SwapRelay
	signer    Signer
	submitter Submitter
	balances  BalanceAggregator
	histories HistoryService
}

// New creates the orchestrating Service from its collaborators.
func New(
	registry *token.Registry,
	builder TransferBuilder,
	relay SwapRelay,
	signer Signer,
	submitter Submitter,
	balances BalanceAggregator,
	histories HistoryService,
) *Service {
	return &Service{
		registry:  registry,
		builder:   builder,
		relay:     relay,
		signer:    signer,
		submitter: submitter,
		balances:  balances,
		histories: histories,
	}
}

// Send transfers amount of the token identified by mint from the user's
// wallet to toAddress, returning the terminal submission result. Input
// parsing happens before any wallet or key access, so malformed requests
// never touch the store.
func (s *Service) Send(ctx context.Context, userID, toAddress, mint string, amount decimal.Decimal) (submit.Result, error) {
	recipient, err := address.Parse(toAddress)
	if err != nil {
		return submit.Result{}, fmt.Errorf("parsing recipient: %w", err)
	}

	mintKey, err := address.Parse(mint)
	if err != nil {
		return submit.Result{}, fmt.Errorf("%w: bad mint %q", token.ErrUnknownToken, mint)
	}
	tok, err := s.registry.ByMint(mintKey)
	if err != nil {
		return submit.Result{}, err
	}

	wallet, err := s.signer.Wallet(ctx, userID)
	if err != nil {
		return submit.Result{}, err
	}
	ctx = logger.Derive(ctx, "wallet", wallet.Address.String())

	built, err := s.builder.Build(ctx, wallet.Address, recipient, tok, amount)
	if err != nil {
		return submit.Result{}, err
	}

	blockhash, err := s.submitter.LatestBlockhash(ctx)
	if err != nil {
		return submit.Result{}, fmt.Errorf("fetching blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		built.Instructions,
		blockhash.Hash,
		solana.TransactionPayer(built.FeePayer),
	)
	if err != nil {
		return submit.Result{}, fmt.Errorf("assembling transaction: %w", err)
	}

	if err := s.signer.Sign(ctx, tx, wallet); err != nil {
		return submit.Result{}, err
	}

	res, err := s.submitter.Submit(ctx, tx, submit.SendOptions{
		LastValidBlockHeight: blockhash.LastValidBlockHeight,
	})
	if err != nil {
		return res, err
	}

	logger.Info(ctx, "transfer confirmed",
		"signature", res.Signature.String(),
		"token", tok.Symbol,
	)
	return res, nil
}

// Swap executes a previously quoted swap for the user's wallet. The
// aggregator-built transaction is signed as received and relayed without a
// preflight simulation, with bounded node-side resubmission.
func (s *Service) Swap(ctx context.Context, userID string, quote json.RawMessage) (submit.Result, error) {
	wallet, err := s.signer.Wallet(ctx, userID)
	if err != nil {
		return submit.Result{}, err
	}
	ctx = logger.Derive(ctx, "wallet", wallet.Address.String())

	tx, err := s.relay.Prepare(ctx, quote, wallet.Address)
	if err != nil {
		return submit.Result{}, err
	}

	if err := s.signer.Sign(ctx, tx, wallet); err != nil {
		return submit.Result{}, err
	}

	maxRetries := swapSendMaxRetries
	res, err := s.submitter.Submit(ctx, tx, submit.SendOptions{
		SkipPreflight: true,
		MaxRetries:    &maxRetries,
	})
	if err != nil {
		return res, err
	}

	logger.Info(ctx, "swap confirmed", "signature", res.Signature.String())
	return res, nil
}

// TokenBalances aggregates the balances of every supported token for the
// given address.
func (s *Service) TokenBalances(ctx context.Context, rawAddress string) (balance.Summary, error) {
	owner, err := address.Parse(rawAddress)
	if err != nil {
		return balance.Summary{}, err
	}

	return s.balances.Aggregate(ctx, owner)
}

// History returns the classified recent transactions of the given address,
// newest first.
func (s *Service) History(ctx context.Context, rawAddress string) ([]history.Record, error) {
	addr, err := address.Parse(rawAddress)
	if err != nil {
		return nil, err
	}

	return s.histories.History(ctx, addr)
}
