package keys

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// masterKeyHMACKey is the BIP-32 key for deriving a master key from a seed.
var masterKeyHMACKey = []byte("Bitcoin seed")

// NewMnemonic returns a new 24 word BIP-39 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}
	return bip39.NewMnemonic(entropy)
}

// PrivateKeyFromMnemonic derives the BIP-32 master private key of the
// BIP-39 seed of mnemonic and password.
func PrivateKeyFromMnemonic(mnemonic string, password string) (*PrivateKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMnemonic, "%s", err)
	}
	return masterKeyFromSeed(seed)
}

func masterKeyFromSeed(seed []byte) (*PrivateKey, error) {
	mac := hmac.New(sha512.New, masterKeyHMACKey)
	_, err := mac.Write(seed)
	if err != nil {
		return nil, errors.Wrap(err, "writing to hmac should never fail")
	}
	i := mac.Sum(nil)

	key, err := PrivateKeyFromBytes(i[:PrivateKeyLength])
	if err != nil {
		// Probability below 2^-127; the seed must be discarded.
		log.Warnf("Seed yields an unusable master key: %s", err)
		return nil, err
	}
	log.Tracef("Derived master key from a %d byte seed", len(seed))
	return key, nil
}
