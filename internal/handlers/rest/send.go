package rest

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/solvault/solvault/internal/pkg/validator"
	"github.com/solvault/solvault/internal/transfer"
)

// sendRequest is the body of POST /api/send. TokenDecimals is accepted for
// compatibility, but the registry's precision is authoritative.
type sendRequest struct {
	ToAddress     string      `json:"toAddress" validate:"required"`
	Amount        json.Number `json:"amount" validate:"required"`
	TokenMint     string      `json:"tokenMint" validate:"required"`
	TokenDecimals *uint8      `json:"tokenDecimals"`
}

// txnResponse is the success body of the send and swap routes.
type txnResponse struct {
	Success     bool   `json:"success"`
	TxnID       string `json:"txnId"`
	ExplorerURL string `json:"explorerUrl"`
}

func (s *Server) send(c *fiber.Ctx) error {
	var req sendRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", validator.ErrValidationFailed, err))
	}
	if err := validator.Validate(req); err != nil {
		return fail(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return fail(c, fmt.Errorf("%w: amount %q", transfer.ErrInvalidAmount, req.Amount))
	}

	res, err := s.ops.Send(c.UserContext(), authenticatedUser(c), req.ToAddress, req.TokenMint, amount)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(txnResponse{
		Success:     true,
		TxnID:       res.Signature.String(),
		ExplorerURL: res.ExplorerURL,
	})
}
