// Package address validates and parses externally supplied address strings
// into the ledger's native public-key representation. Parsing is synchronous
// and performs no I/O, so it can run as the first validation gate of every
// request.
package address

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrInvalidAddress indicates a malformed, wrong-length or badly encoded
// address string.
var ErrInvalidAddress = errors.New("invalid address")

// Parse decodes a base58 address string into a public key. It rejects empty,
// malformed and wrong-length inputs with ErrInvalidAddress.
func Parse(raw string) (solana.PublicKey, error) {
	if raw == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	pk, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %q", ErrInvalidAddress, raw)
	}

	return pk, nil
}
