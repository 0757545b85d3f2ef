package history

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the user-facing movement of funds in a classified record.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
	DirectionSwap     Direction = "swap"
	DirectionUnknown  Direction = "unknown"
)

// Status is the execution outcome of a historical transaction.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Record is a single classified history entry for an address.
type Record struct {
	Signature   string
	Timestamp   time.Time
	Direction   Direction
	Amount      decimal.Decimal
	TokenSymbol string
	Counterpart string
	Status      Status
}

// InstructionKind discriminates the recognized instruction shapes.
type InstructionKind int

const (
	// KindUnrecognized covers every instruction the classifier has no
	// interest in. It never contributes to a record.
	KindUnrecognized InstructionKind = iota
	// KindTransfer is a parsed transfer or transferChecked instruction.
	KindTransfer
	// KindSwap is any instruction owned by a known swap aggregator program.
	KindSwap
)

// TransferDetail carries the parsed fields of a transfer-shaped instruction.
// At most one of TokenAmount, Lamports, and RawAmount is expected; when more
// than one is present they are consumed in that order.
type TransferDetail struct {
	Source      string
	Destination string

	// TokenSymbol names the moved asset when the parsed form carries one.
	// Empty for plain lamport moves.
	TokenSymbol string

	// TokenAmount is the UI-scaled token amount of a transferChecked.
	TokenAmount *decimal.Decimal

	// Lamports is the base-unit amount of a native transfer.
	Lamports *uint64

	// RawAmount is the unscaled amount of a plain token transfer, whose
	// decimals the parsed form does not carry.
	RawAmount *decimal.Decimal
}

// Instruction is one instruction of a raw transaction, reduced to the shapes
// the classifier recognizes. Transfer is non-nil exactly when Kind is
// KindTransfer.
type Instruction struct {
	Kind     InstructionKind
	Transfer *TransferDetail
}

// RawTransaction is the ledger's record of one historical transaction,
// normalized by the infra adapter into classifier input.
type RawTransaction struct {
	Signature string

	// BlockTime is the block's timestamp. Zero when the ledger did not
	// report one.
	BlockTime time.Time

	// HasMeta reports whether the ledger returned execution metadata.
	// Entries without metadata cannot be classified and produce no record.
	HasMeta bool

	// Failed reports whether the transaction landed with an execution error.
	Failed bool

	// AccountKeys are the transaction's account addresses, index-aligned
	// with PreBalances and PostBalances.
	AccountKeys  []string
	PreBalances  []uint64
	PostBalances []uint64

	Instructions []Instruction
}
