// Package transfer builds the ordered instruction sequence for moving native
// or token balances between two addresses. Native transfers are a single
// balance-transfer instruction; token transfers move value between associated
// token accounts and provision the recipient's account when it does not exist
// yet.
package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/solvault/solvault/internal/token"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	tokenprog "github.com/gagliardetto/solana-go/programs/token"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates that the requested amount is non-positive after
// base-unit scaling, not representable in 64 bits, or exceeds the sender's
// known balance. The balance check is advisory; the ledger remains the final
// authority and may still reject the transfer for other reasons such as a fee
// shortfall.
var ErrInvalidAmount = errors.New("invalid amount")

// BuiltTransaction is an ordered sequence of ledger instructions plus the
// fee-payer address. Instruction order is load-bearing: an account-creation
// instruction must precede any instruction referencing the created account.
type BuiltTransaction struct {
	Instructions []solana.Instruction
	FeePayer     solana.PublicKey
}

// Builder constructs transfer transactions against an injected ledger handle.
type Builder struct {
	ledger Ledger
}

// NewBuilder creates a Builder using the provided ledger lookups.
func NewBuilder(ledger Ledger) *Builder {
	return &Builder{
		ledger: ledger,
	}
}

// toBaseUnits scales a decimal user amount by 10^decimals and truncates
// toward zero. It fails with ErrInvalidAmount when the result is non-positive
// or does not fit an unsigned 64-bit integer.
func toBaseUnits(amount decimal.Decimal, decimals uint8) (uint64, error) {
	scaled := amount.Shift(int32(decimals)).Truncate(0)
	if !scaled.IsPositive() {
		return 0, fmt.Errorf("%w: %s is not positive after scaling", ErrInvalidAmount, amount)
	}

	base := scaled.BigInt()
	if !base.IsUint64() {
		return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrInvalidAmount, amount)
	}

	return base.Uint64(), nil
}

// buildNative emits the single balance-transfer instruction for the chain's
// base currency. Native accounts always exist, so no provisioning is needed.
func (b *Builder) buildNative(ctx context.Context, sender, recipient solana.PublicKey, lamports uint64) (BuiltTransaction, error) {
	balance, err := b.ledger.NativeBalance(ctx, sender)
	if err != nil {
		return BuiltTransaction{}, fmt.Errorf("fetching sender balance: %w", err)
	}
	if lamports > balance {
		return BuiltTransaction{}, fmt.Errorf("%w: amount exceeds balance of %d base units", ErrInvalidAmount, balance)
	}

	return BuiltTransaction{
		Instructions: []solana.Instruction{
			system.NewTransferInstruction(lamports, sender, recipient).Build(),
		},
		FeePayer: sender,
	}, nil
}

// buildToken emits the instruction sequence for a registry (non-native)
// asset: an optional recipient account creation funded by the sender,
// followed by the token transfer between the derived associated accounts.
func (b *Builder) buildToken(ctx context.Context, sender, recipient solana.PublicKey, tok token.Token, baseUnits uint64) (BuiltTransaction, error) {
	senderAccount, _, err := solana.FindAssociatedTokenAddress(sender, tok.Mint)
	if err != nil {
		return BuiltTransaction{}, fmt.Errorf("deriving sender token account: %w", err)
	}

	recipientAccount, _, err := solana.FindAssociatedTokenAddress(recipient, tok.Mint)
	if err != nil {
		return BuiltTransaction{}, fmt.Errorf("deriving recipient token account: %w", err)
	}

	balance, err := b.ledger.TokenBalance(ctx, senderAccount)
	if err != nil {
		return BuiltTransaction{}, fmt.Errorf("fetching sender token balance: %w", err)
	}
	if baseUnits > balance {
		return BuiltTransaction{}, fmt.Errorf("%w: amount exceeds balance of %d base units", ErrInvalidAmount, balance)
	}

	exists, err := b.ledger.TokenAccountExists(ctx, recipientAccount)
	if err != nil {
		return BuiltTransaction{}, fmt.Errorf("checking recipient token account: %w", err)
	}

	instructions := make([]solana.Instruction, 0, 2)
	if !exists {
		// Creation must come first: the transfer references the account.
		instructions = append(instructions,
			associatedtokenaccount.NewCreateInstruction(sender, recipient, tok.Mint).Build(),
		)
	}

	instructions = append(instructions,
		tokenprog.NewTransferInstruction(baseUnits, senderAccount, recipientAccount, sender, nil).Build(),
	)

	return BuiltTransaction{
		Instructions: instructions,
		FeePayer:     sender,
	}, nil
}

// Build produces the ordered instruction list moving amount of tok from
// sender to recipient, with sender as fee payer. The only ledger access is
// read-only: an advisory balance lookup and, for token transfers, a recipient
// account existence check.
func (b *Builder) Build(ctx context.Context, sender, recipient solana.PublicKey, tok token.Token, amount decimal.Decimal) (BuiltTransaction, error) {
	baseUnits, err := toBaseUnits(amount, tok.Decimals)
	if err != nil {
		return BuiltTransaction{}, err
	}

	if tok.Native {
		return b.buildNative(ctx, sender, recipient, baseUnits)
	}

	return b.buildToken(ctx, sender, recipient, tok, baseUnits)
}
