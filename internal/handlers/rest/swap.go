package rest

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/solvault/solvault/internal/pkg/validator"
)

// swapRequest is the body of POST /api/swap. The quote is forwarded to the
// aggregator untouched.
type swapRequest struct {
	QuoteResponse json.RawMessage `json:"quoteResponse"`
}

func (s *Server) swap(c *fiber.Ctx) error {
	var req swapRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", validator.ErrValidationFailed, err))
	}
	if len(req.QuoteResponse) == 0 || string(req.QuoteResponse) == "null" {
		return fail(c, fmt.Errorf("%w: quoteResponse is required", validator.ErrValidationFailed))
	}

	res, err := s.ops.Swap(c.UserContext(), authenticatedUser(c), req.QuoteResponse)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(txnResponse{
		Success:     true,
		TxnID:       res.Signature.String(),
		ExplorerURL: res.ExplorerURL,
	})
}
