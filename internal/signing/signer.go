// Package signing loads a user's stored keypair for the duration of a single
// request and produces the signatures a constructed transaction requires. Key
// material is parsed with a fail-closed step, scoped to one sign operation,
// and never retained or logged.
package signing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// ErrKeyMaterialCorrupt indicates that the stored key material could not be
// reconstructed into a valid signing key.
var ErrKeyMaterialCorrupt = errors.New("key material corrupt")

// secretKeyLength is the expected byte length of a stored ed25519 secret key
// (32-byte seed followed by the 32-byte public key).
const secretKeyLength = 64

// ParseSecretKey reconstructs a signing key from its stored representation, a
// comma-delimited sequence of byte values. It fails closed with
// ErrKeyMaterialCorrupt on any malformed input rather than producing a
// corrupt key silently.
func ParseSecretKey(material string) (solana.PrivateKey, error) {
	parts := strings.Split(material, ",")
	if len(parts) != secretKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrKeyMaterialCorrupt, secretKeyLength, len(parts))
	}

	key := make(solana.PrivateKey, secretKeyLength)
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: byte %d is not a valid value", ErrKeyMaterialCorrupt, i)
		}
		key[i] = byte(v)
	}

	return key, nil
}

// Signer signs constructed transactions with wallets fetched from the record
// store. A Signer holds no key material itself; keys exist only inside a
// single Sign call.
type Signer struct {
	store WalletStore
}

// New creates a Signer backed by the given wallet store.
func New(store WalletStore) *Signer {
	return &Signer{
		store: store,
	}
}

// Wallet fetches the wallet owned by userID from the record store.
func (s *Signer) Wallet(ctx context.Context, userID string) (Wallet, error) {
	return s.store.WalletByUser(ctx, userID)
}

// Sign reconstructs the wallet's keypair and signs tx in place. It fails with
// ErrKeyMaterialCorrupt when the stored material does not parse or does not
// derive the wallet's public address. The parsed key is discarded when the
// call returns.
func (s *Signer) Sign(ctx context.Context, tx *solana.Transaction, w Wallet) error {
	key, err := ParseSecretKey(w.SecretKey)
	if err != nil {
		return err
	}

	pub := key.PublicKey()
	if !pub.Equals(w.Address) {
		return fmt.Errorf("%w: derived public key does not match wallet address", ErrKeyMaterialCorrupt)
	}

	if _, err := tx.Sign(func(k solana.PublicKey) *solana.PrivateKey {
		if k.Equals(pub) {
			return &key
		}
		return nil
	}); err != nil {
		return fmt.Errorf("signing transaction: %w", err)
	}

	return nil
}
