package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerMock struct {
	mock.Mock
}

func (m *ledgerMock) Signatures(ctx context.Context, address solana.PublicKey, limit int) ([]solana.Signature, error) {
	args := m.Called(ctx, address, limit)
	return args.Get(0).([]solana.Signature), args.Error(1)
}

func (m *ledgerMock) Transaction(ctx context.Context, signature solana.Signature) (RawTransaction, error) {
	args := m.Called(ctx, signature)
	return args.Get(0).(RawTransaction), args.Error(1)
}

func signatureOf(b byte) solana.Signature {
	var sig solana.Signature
	sig[0] = b
	return sig
}

func TestService_History(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fetches, classifies, and orders the window", func(t *testing.T) {
		sigA, sigB := signatureOf(1), signatureOf(2)

		ledger := new(ledgerMock)
		ledger.On("Signatures", mock.Anything, queried, 20).Return([]solana.Signature{sigA, sigB}, nil)
		ledger.On("Transaction", mock.Anything, sigA).Return(RawTransaction{
			Signature: sigA.String(),
			HasMeta:   true,
			BlockTime: now.Add(-time.Hour),
		}, nil)
		ledger.On("Transaction", mock.Anything, sigB).Return(RawTransaction{
			Signature: sigB.String(),
			HasMeta:   true,
			BlockTime: now.Add(-time.Minute),
		}, nil)

		svc := NewService(ledger)
		records, err := svc.History(t.Context(), queried)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, sigB.String(), records[0].Signature)
		assert.Equal(t, sigA.String(), records[1].Signature)
		ledger.AssertExpectations(t)
	})

	t.Run("a failed lookup drops only that entry", func(t *testing.T) {
		sigA, sigB := signatureOf(1), signatureOf(2)

		ledger := new(ledgerMock)
		ledger.On("Signatures", mock.Anything, queried, 20).Return([]solana.Signature{sigA, sigB}, nil)
		ledger.On("Transaction", mock.Anything, sigA).Return(RawTransaction{}, errors.New("node unavailable"))
		ledger.On("Transaction", mock.Anything, sigB).Return(RawTransaction{
			Signature: sigB.String(),
			HasMeta:   true,
			BlockTime: now,
		}, nil)

		svc := NewService(ledger)
		records, err := svc.History(t.Context(), queried)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, sigB.String(), records[0].Signature)
	})

	t.Run("signature listing failures fail the request", func(t *testing.T) {
		ledger := new(ledgerMock)
		ledger.On("Signatures", mock.Anything, queried, 20).Return([]solana.Signature(nil), errors.New("node unavailable"))

		svc := NewService(ledger)
		_, err := svc.History(t.Context(), queried)

		assert.Error(t, err)
		ledger.AssertNotCalled(t, "Transaction", mock.Anything, mock.Anything)
	})

	t.Run("honors a custom window", func(t *testing.T) {
		ledger := new(ledgerMock)
		ledger.On("Signatures", mock.Anything, queried, 5).Return([]solana.Signature{}, nil)

		svc := NewService(ledger, WithWindow(5))
		records, err := svc.History(t.Context(), queried)

		require.NoError(t, err)
		assert.Empty(t, records)
		ledger.AssertExpectations(t)
	})
}
