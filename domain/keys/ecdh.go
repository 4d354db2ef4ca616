package keys

import (
	"github.com/btcsuite/btcd/btcec"
)

// SharedKeyLength is the size of a key returned by DeriveSharedKey.
const SharedKeyLength = 32

// DeriveSharedKey performs elliptic curve Diffie-Hellman and returns the x
// coordinate of the shared point, left padded to 32 bytes.
// DeriveSharedKey(a, B) equals DeriveSharedKey(b, A).
func DeriveSharedKey(privateKey *PrivateKey, publicKey *PublicKey) []byte {
	x := btcec.GenerateSharedSecret(privateKey.key, publicKey.key)
	shared := make([]byte, SharedKeyLength)
	copy(shared[SharedKeyLength-len(x):], x)
	return shared
}
