package keys

import "github.com/pkg/errors"

var (
	// ErrInvalidPrivateKey is returned for a private key that is not a
	// valid secp256k1 scalar.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned for bytes that are not a serialized
	// secp256k1 point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidWIF is returned for a malformed wallet import format string.
	ErrInvalidWIF = errors.New("invalid WIF")

	// ErrInvalidMnemonic is returned for a mnemonic failing the BIP-39
	// word list or checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)
