package solanarpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/solvault/solvault/internal/history"
)

// unknownTokenSymbol stands in when a history entry moves a token the
// registry does not know.
const unknownTokenSymbol = "SPL"

type (
	// signatureInfoResponse is one entry of a getSignaturesForAddress response.
	signatureInfoResponse struct {
		Signature string `json:"signature"`
	}

	// parsedTokenAmountResponse is the tokenAmount of a parsed transferChecked.
	parsedTokenAmountResponse struct {
		UIAmountString string `json:"uiAmountString"`
	}

	// parsedInstructionInfoResponse is the parsed info of a transfer-shaped
	// instruction. Exactly one of TokenAmount, Lamports, and Amount is set
	// depending on the instruction's program and type.
	parsedInstructionInfoResponse struct {
		Source      string                     `json:"source"`
		Destination string                     `json:"destination"`
		Mint        string                     `json:"mint"`
		Lamports    *uint64                    `json:"lamports"`
		Amount      string                     `json:"amount"`
		TokenAmount *parsedTokenAmountResponse `json:"tokenAmount"`
	}

	// instructionResponse is one instruction of a jsonParsed transaction.
	instructionResponse struct {
		Program   string `json:"program"`
		ProgramID string `json:"programId"`
		Parsed    *struct {
			Type string                        `json:"type"`
			Info parsedInstructionInfoResponse `json:"info"`
		} `json:"parsed"`
	}

	// accountKeyResponse is one accountKeys entry of a jsonParsed message.
	accountKeyResponse struct {
		Pubkey string `json:"pubkey"`
	}

	// transactionResponse is a getTransaction response under jsonParsed
	// encoding. A nil Meta means the node had no execution record.
	transactionResponse struct {
		BlockTime *int64 `json:"blockTime"`
		Meta      *struct {
			Err          json.RawMessage `json:"err"`
			PreBalances  []uint64        `json:"preBalances"`
			PostBalances []uint64        `json:"postBalances"`
		} `json:"meta"`
		Transaction struct {
			Message struct {
				AccountKeys  []accountKeyResponse  `json:"accountKeys"`
				Instructions []instructionResponse `json:"instructions"`
			} `json:"message"`
		} `json:"transaction"`
	}
)

// Signatures fetches the most recent signatures involving address, newest
// first, capped at limit.
func (c *client) Signatures(ctx context.Context, address solana.PublicKey, limit int) ([]solana.Signature, error) {
	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", address.String(), map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	var infos []signatureInfoResponse
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, err
	}

	signatures := make([]solana.Signature, 0, len(infos))
	for _, info := range infos {
		signature, err := solana.SignatureFromBase58(info.Signature)
		if err != nil {
			return nil, fmt.Errorf("parsing signature %q: %w", info.Signature, err)
		}
		signatures = append(signatures, signature)
	}

	return signatures, nil
}

// Transaction fetches one historical transaction in parsed form and
// normalizes it into classifier input.
func (c *client) Transaction(ctx context.Context, signature solana.Signature) (history.RawTransaction, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", signature.String(), map[string]any{
		"encoding":                       "jsonParsed",
		"maxSupportedTransactionVersion": 0,
	})
	if err != nil {
		return history.RawTransaction{}, err
	}

	var resp transactionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return history.RawTransaction{}, err
	}

	return c.toRawTransaction(signature, resp), nil
}

func (c *client) toRawTransaction(signature solana.Signature, resp transactionResponse) history.RawTransaction {
	raw := history.RawTransaction{
		Signature: signature.String(),
		HasMeta:   resp.Meta != nil,
	}
	if resp.BlockTime != nil {
		raw.BlockTime = time.Unix(*resp.BlockTime, 0).UTC()
	}
	if resp.Meta != nil {
		raw.Failed = isJSONValue(resp.Meta.Err)
		raw.PreBalances = resp.Meta.PreBalances
		raw.PostBalances = resp.Meta.PostBalances
	}

	keys := resp.Transaction.Message.AccountKeys
	raw.AccountKeys = make([]string, len(keys))
	for i, key := range keys {
		raw.AccountKeys[i] = key.Pubkey
	}

	raw.Instructions = make([]history.Instruction, len(resp.Transaction.Message.Instructions))
	for i, ins := range resp.Transaction.Message.Instructions {
		raw.Instructions[i] = c.toInstruction(ins)
	}

	return raw
}

// toInstruction reduces a parsed instruction to the shapes the classifier
// recognizes.
func (c *client) toInstruction(ins instructionResponse) history.Instruction {
	if isSwapProgram(ins.Program, ins.ProgramID) {
		return history.Instruction{Kind: history.KindSwap}
	}

	if ins.Parsed == nil || (ins.Parsed.Type != "transfer" && ins.Parsed.Type != "transferChecked") {
		return history.Instruction{Kind: history.KindUnrecognized}
	}

	info := ins.Parsed.Info
	detail := &history.TransferDetail{
		Source:      info.Source,
		Destination: info.Destination,
	}

	switch {
	case info.TokenAmount != nil:
		if amount, err := decimal.NewFromString(info.TokenAmount.UIAmountString); err == nil {
			detail.TokenAmount = &amount
		}
		detail.TokenSymbol = c.symbolForMint(info.Mint)
	case info.Lamports != nil:
		detail.Lamports = info.Lamports
	case info.Amount != "":
		if amount, err := decimal.NewFromString(info.Amount); err == nil {
			detail.RawAmount = &amount
		}
		detail.TokenSymbol = c.symbolForMint(info.Mint)
	}

	return history.Instruction{
		Kind:     history.KindTransfer,
		Transfer: detail,
	}
}

func (c *client) symbolForMint(rawMint string) string {
	mint, err := solana.PublicKeyFromBase58(rawMint)
	if err != nil {
		return unknownTokenSymbol
	}

	tok, err := c.registry.ByMint(mint)
	if err != nil {
		return unknownTokenSymbol
	}

	return tok.Symbol
}

// isSwapProgram matches instructions owned by a known swap aggregator. The
// parsed program label and the raw program id are both checked because the
// node only labels programs it can parse.
func isSwapProgram(program, programID string) bool {
	return strings.Contains(strings.ToLower(program), "jupiter") ||
		strings.Contains(programID, "JUP")
}
