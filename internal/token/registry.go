package token

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// NativeMint is the wrapped-SOL mint address. Requests that reference this
// mint are treated as native transfers and never touch a token account.
var NativeMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

var (
	usdcMint = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	usdtMint = solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")
)

// DefaultRegistry returns the built-in set of supported tokens with their
// reference prices. Prices are static reference values; live pricing is a
// presentation concern outside this service.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Token{
			Symbol:   "SOL",
			Mint:     NativeMint,
			Decimals: 9,
			Native:   true,
			PriceUSD: decimal.NewFromInt(180),
		},
		Token{
			Symbol:   "USDC",
			Mint:     usdcMint,
			Decimals: 6,
			PriceUSD: decimal.NewFromInt(1),
		},
		Token{
			Symbol:   "USDT",
			Mint:     usdtMint,
			Decimals: 6,
			PriceUSD: decimal.NewFromInt(1),
		},
	)
}
