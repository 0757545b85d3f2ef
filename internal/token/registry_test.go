package token

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	t.Run("exposes the supported assets in order", func(t *testing.T) {
		tokens := registry.Tokens()
		require.Len(t, tokens, 3)
		assert.Equal(t, "SOL", tokens[0].Symbol)
		assert.Equal(t, "USDC", tokens[1].Symbol)
		assert.Equal(t, "USDT", tokens[2].Symbol)
	})

	t.Run("only the base currency is native", func(t *testing.T) {
		for _, tok := range registry.Tokens() {
			assert.Equal(t, tok.Symbol == "SOL", tok.Native, tok.Symbol)
		}
	})

	t.Run("resolves by symbol", func(t *testing.T) {
		sol, err := registry.BySymbol("SOL")
		require.NoError(t, err)
		assert.Equal(t, uint8(9), sol.Decimals)
		assert.Equal(t, NativeMint, sol.Mint)
	})

	t.Run("resolves by mint", func(t *testing.T) {
		usdc, err := registry.ByMint(solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"))
		require.NoError(t, err)
		assert.Equal(t, "USDC", usdc.Symbol)
		assert.Equal(t, uint8(6), usdc.Decimals)
	})

	t.Run("unknown lookups fail", func(t *testing.T) {
		_, err := registry.BySymbol("DOGE")
		assert.ErrorIs(t, err, ErrUnknownToken)

		_, err = registry.ByMint(solana.PublicKey{})
		assert.ErrorIs(t, err, ErrUnknownToken)
	})
}

func TestNewRegistry(t *testing.T) {
	t.Run("returned slices are copies", func(t *testing.T) {
		registry := NewRegistry(Token{Symbol: "AAA", Decimals: 2, PriceUSD: decimal.NewFromInt(1)})

		tokens := registry.Tokens()
		tokens[0].Symbol = "mutated"

		fresh := registry.Tokens()
		assert.Equal(t, "AAA", fresh[0].Symbol)
	})

	t.Run("later duplicates overwrite earlier entries", func(t *testing.T) {
		registry := NewRegistry(
			Token{Symbol: "AAA", Decimals: 2},
			Token{Symbol: "AAA", Decimals: 4},
		)

		tok, err := registry.BySymbol("AAA")
		require.NoError(t, err)
		assert.Equal(t, uint8(4), tok.Decimals)
	})
}
