// Package token holds the static registry of assets the wallet can hold,
// send and swap. Each entry maps a symbolic identifier to its on-chain mint,
// decimal precision and reference price.
package token

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// ErrUnknownToken is returned when a lookup does not match any registry entry.
var ErrUnknownToken = errors.New("unknown token")

// Token describes a single supported asset.
//
// Native marks the chain's base currency, which every account can hold
// without a dedicated token account. Non-native assets live in an associated
// token account derived from (owner, mint).
type Token struct {
	Symbol   string           // human-readable identifier (e.g. "SOL", "USDC")
	Mint     solana.PublicKey // on-chain mint address
	Decimals uint8            // base-unit precision (SOL: 9, USDC: 6)
	Native   bool             // true for the chain's base currency
	PriceUSD decimal.Decimal  // reference price used for USD valuations
}

// Registry is an immutable collection of supported tokens, indexed by symbol
// and mint. It is loaded once at startup and shared read-only between
// components.
type Registry struct {
	tokens   []Token
	bySymbol map[string]Token
	byMint   map[solana.PublicKey]Token
}

// NewRegistry builds a Registry from the given tokens. Later entries with a
// duplicate symbol or mint overwrite earlier ones.
func NewRegistry(tokens ...Token) *Registry {
	r := &Registry{
		tokens:   make([]Token, len(tokens)),
		bySymbol: make(map[string]Token, len(tokens)),
		byMint:   make(map[solana.PublicKey]Token, len(tokens)),
	}

	copy(r.tokens, tokens)
	for _, t := range tokens {
		r.bySymbol[t.Symbol] = t
		r.byMint[t.Mint] = t
	}

	return r
}

// Tokens returns the registry entries in their configured order.
// The returned slice is a copy and safe to retain.
func (r *Registry) Tokens() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// BySymbol resolves a token by its symbolic identifier.
func (r *Registry) BySymbol(symbol string) (Token, error) {
	t, ok := r.bySymbol[symbol]
	if !ok {
		return Token{}, ErrUnknownToken
	}
	return t, nil
}

// ByMint resolves a token by its mint address.
func (r *Registry) ByMint(mint solana.PublicKey) (Token, error) {
	t, ok := r.byMint[mint]
	if !ok {
		return Token{}, ErrUnknownToken
	}
	return t, nil
}
