package rest

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solvault/solvault/internal/history"
	"github.com/solvault/solvault/internal/pkg/validator"
)

// transactionEntry is one classified record in the GET /api/transactions
// response.
type transactionEntry struct {
	Signature   string `json:"signature"`
	Timestamp   string `json:"timestamp"`
	Direction   string `json:"direction"`
	Amount      string `json:"amount"`
	Token       string `json:"token"`
	Counterpart string `json:"counterpart,omitempty"`
	Status      string `json:"status"`
}

type transactionsResponse struct {
	Transactions []transactionEntry `json:"transactions"`
}

func (s *Server) transactions(c *fiber.Ctx) error {
	rawAddress := c.Query("address")
	if rawAddress == "" {
		return fail(c, fmt.Errorf("%w: address query parameter is required", validator.ErrValidationFailed))
	}

	records, err := s.ops.History(c.UserContext(), rawAddress)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(toTransactionsResponse(records))
}

func toTransactionsResponse(records []history.Record) transactionsResponse {
	entries := make([]transactionEntry, len(records))
	for i, rec := range records {
		entries[i] = transactionEntry{
			Signature:   rec.Signature,
			Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339),
			Direction:   string(rec.Direction),
			Amount:      rec.Amount.String(),
			Token:       rec.TokenSymbol,
			Counterpart: rec.Counterpart,
			Status:      string(rec.Status),
		}
	}

	return transactionsResponse{Transactions: entries}
}
