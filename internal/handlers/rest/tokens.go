package rest

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/solvault/solvault/internal/balance"
	"github.com/solvault/solvault/internal/pkg/validator"
)

// tokenEntry is one token's holding in the GET /api/tokens response.
type tokenEntry struct {
	Symbol     string `json:"symbol"`
	Mint       string `json:"mint"`
	Decimals   uint8  `json:"decimals"`
	IsNative   bool   `json:"isNative"`
	PriceUSD   string `json:"priceUsd"`
	Balance    string `json:"balance"`
	USDBalance string `json:"usdBalance"`
	Degraded   bool   `json:"degraded,omitempty"`
}

type tokensResponse struct {
	Tokens       []tokenEntry `json:"tokens"`
	TotalBalance string       `json:"totalBalance"`
}

func (s *Server) tokens(c *fiber.Ctx) error {
	rawAddress := c.Query("address")
	if rawAddress == "" {
		return fail(c, fmt.Errorf("%w: address query parameter is required", validator.ErrValidationFailed))
	}

	summary, err := s.ops.TokenBalances(c.UserContext(), rawAddress)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(toTokensResponse(summary))
}

func toTokensResponse(summary balance.Summary) tokensResponse {
	entries := make([]tokenEntry, len(summary.Tokens))
	for i, b := range summary.Tokens {
		entries[i] = tokenEntry{
			Symbol:     b.Token.Symbol,
			Mint:       b.Token.Mint.String(),
			Decimals:   b.Token.Decimals,
			IsNative:   b.Token.Native,
			PriceUSD:   b.Token.PriceUSD.String(),
			Balance:    b.Amount.String(),
			USDBalance: b.ValueUSD.StringFixed(2),
			Degraded:   b.Degraded,
		}
	}

	return tokensResponse{
		Tokens:       entries,
		TotalBalance: summary.TotalUSD.StringFixed(2),
	}
}
