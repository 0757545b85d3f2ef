// Package history turns an address's raw ledger transactions into typed,
// user-facing records. Classification is a pure function over already fetched
// data; fetching is the service's concern.
package history

import (
	"sort"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// nativeDecimals is the base-unit precision of the native asset.
const nativeDecimals = 9

const nativeSymbol = "SOL"

// Classify normalizes raw transactions into records for address, newest
// first. Entries without execution metadata are dropped. Entries without a
// block time use now as a stand-in timestamp so they still sort. Repeated
// calls over identical input produce identical output.
func Classify(address solana.PublicKey, txs []RawTransaction, now time.Time) []Record {
	addr := address.String()

	records := make([]Record, 0, len(txs))
	for _, tx := range txs {
		if !tx.HasMeta {
			continue
		}
		records = append(records, classifyOne(addr, tx, now))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	return records
}

func classifyOne(addr string, tx RawTransaction, now time.Time) Record {
	rec := Record{
		Signature: tx.Signature,
		Timestamp: tx.BlockTime,
		Direction: DirectionUnknown,
		Status:    StatusSuccess,
	}
	if tx.Failed {
		rec.Status = StatusFailed
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = now
	}

	var (
		swapSeen    bool
		sawSent     bool
		sawReceived bool
	)
	for _, ins := range tx.Instructions {
		switch ins.Kind {
		case KindSwap:
			swapSeen = true
		case KindTransfer:
			detail := ins.Transfer
			if detail == nil {
				continue
			}

			var direction Direction
			var counterpart string
			switch {
			case detail.Source == addr:
				direction, counterpart = DirectionSent, detail.Destination
			case detail.Destination == addr:
				direction, counterpart = DirectionReceived, detail.Source
			default:
				continue
			}

			sawSent = sawSent || direction == DirectionSent
			sawReceived = sawReceived || direction == DirectionReceived

			// The first leg touching the address wins; later legs only
			// influence the mixed-direction check above.
			if rec.Direction != DirectionUnknown {
				continue
			}

			rec.Direction = direction
			rec.Counterpart = counterpart
			rec.Amount, rec.TokenSymbol = transferAmount(detail)
		}
	}

	// A swap's internal transfer legs are not individually meaningful, so
	// swap detection overrides whatever the legs said.
	if swapSeen {
		rec.Direction = DirectionSwap
		return rec
	}

	// Opposite-direction legs without a recognized swap program leave the
	// net movement ambiguous.
	if sawSent && sawReceived {
		rec.Direction = DirectionUnknown
		return rec
	}

	if rec.Direction == DirectionUnknown {
		rec.Direction, rec.Amount, rec.TokenSymbol = nativeDeltaFallback(addr, tx)
	}

	return rec
}

// transferAmount extracts the moved amount from a parsed transfer leg,
// preferring the UI-scaled token amount, then native lamports, then the raw
// unscaled amount.
func transferAmount(detail *TransferDetail) (decimal.Decimal, string) {
	switch {
	case detail.TokenAmount != nil:
		return *detail.TokenAmount, detail.TokenSymbol
	case detail.Lamports != nil:
		return decimal.NewFromUint64(*detail.Lamports).Shift(-nativeDecimals), nativeSymbol
	case detail.RawAmount != nil:
		return *detail.RawAmount, detail.TokenSymbol
	default:
		return decimal.Zero, detail.TokenSymbol
	}
}

// nativeDeltaFallback classifies by the address's native balance movement
// when no instruction produced a classification.
func nativeDeltaFallback(addr string, tx RawTransaction) (Direction, decimal.Decimal, string) {
	idx := -1
	for i, key := range tx.AccountKeys {
		if key == addr {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(tx.PreBalances) || idx >= len(tx.PostBalances) {
		return DirectionUnknown, decimal.Zero, ""
	}

	delta := decimal.NewFromUint64(tx.PostBalances[idx]).
		Sub(decimal.NewFromUint64(tx.PreBalances[idx])).
		Shift(-nativeDecimals)

	switch delta.Sign() {
	case 1:
		return DirectionReceived, delta, nativeSymbol
	case -1:
		return DirectionSent, delta.Abs(), nativeSymbol
	default:
		return DirectionUnknown, decimal.Zero, ""
	}
}
