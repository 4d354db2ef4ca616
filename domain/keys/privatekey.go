package keys

import (
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// PrivateKeyLength is the size of a serialized secp256k1 private key.
const PrivateKeyLength = 32

// PrivateKey is a secp256k1 private key.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PrivateKeyFromBytes creates a private key from its 32 byte scalar. The
// scalar must be in [1, N-1].
func PrivateKeyFromBytes(serialized []byte) (*PrivateKey, error) {
	if len(serialized) != PrivateKeyLength {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "private key has %d bytes, want %d",
			len(serialized), PrivateKeyLength)
	}
	if !isValidScalar(serialized) {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "private key is out of the curve order range")
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), serialized)
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex parses a hex encoded 32 byte private key.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	serialized, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "private key is not hex: %s", err)
	}
	return PrivateKeyFromBytes(serialized)
}

// GeneratePrivateKey returns a new random private key.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate private key")
	}
	return &PrivateKey{key: key}, nil
}

// Serialize returns the 32 byte big endian scalar.
func (k *PrivateKey) Serialize() []byte {
	return k.key.Serialize()
}

// Hex returns the hex encoding of Serialize.
func (k *PrivateKey) Hex() string {
	return hex.EncodeToString(k.Serialize())
}

// PublicKey returns the public key of k.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: k.key.PubKey()}
}

// SignHash signs a 32 byte hash with ECDSA and returns the DER encoded
// signature followed by sighashType, the form pushed by an unlocking script.
func (k *PrivateKey) SignHash(hash []byte, sighashType byte) ([]byte, error) {
	if len(hash) != 32 {
		return nil, errors.Errorf("hash has %d bytes, want 32", len(hash))
	}
	signature, err := k.key.Sign(hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign hash")
	}
	return append(signature.Serialize(), sighashType), nil
}

func isValidScalar(serialized []byte) bool {
	d := new(big.Int).SetBytes(serialized)
	return d.Sign() > 0 && d.Cmp(btcec.S256().N) < 0
}
