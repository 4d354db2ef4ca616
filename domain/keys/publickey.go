package keys

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec"
	"github.com/kaspanet/txtemplate/util"
	"github.com/pkg/errors"
)

// Serialized public key sizes.
const (
	PublicKeyLengthCompressed   = 33
	PublicKeyLengthUncompressed = 65
)

// PublicKey is a secp256k1 public key.
type PublicKey struct {
	key *btcec.PublicKey
}

// PublicKeyFromBytes parses a compressed or uncompressed public key.
func PublicKeyFromBytes(serialized []byte) (*PublicKey, error) {
	key, err := btcec.ParsePubKey(serialized, btcec.S256())
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "%s", err)
	}
	return &PublicKey{key: key}, nil
}

// PublicKeyFromHex parses a hex encoded public key.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	serialized, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "public key is not hex: %s", err)
	}
	return PublicKeyFromBytes(serialized)
}

// Serialize returns the 33 byte compressed or 65 byte uncompressed encoding.
func (k *PublicKey) Serialize(compressed bool) []byte {
	if compressed {
		return k.key.SerializeCompressed()
	}
	return k.key.SerializeUncompressed()
}

// Hash160 returns RIPEMD160(SHA256(serialized key)), the value an
// OP_PUBKEYHASH slot carries.
func (k *PublicKey) Hash160(compressed bool) []byte {
	return util.Hash160(k.Serialize(compressed))
}

// IsEqual returns whether both keys are the same point.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.key.IsEqual(other.key)
}

// VerifySignature checks a DER signature followed by a sighash byte, as
// produced by SignHash, against hash.
func (k *PublicKey) VerifySignature(hash []byte, signature []byte) bool {
	if len(signature) < 2 {
		return false
	}
	parsed, err := btcec.ParseDERSignature(signature[:len(signature)-1], btcec.S256())
	if err != nil {
		return false
	}
	return parsed.Verify(hash, k.key)
}
