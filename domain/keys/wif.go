// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// WIF version bytes.
const (
	MainnetWIFVersion byte = 0x80
	TestnetWIFVersion byte = 0xef
)

// compressMagic follows the key in the payload of a WIF whose public key
// is serialized compressed.
const compressMagic byte = 0x01

// WIF encodes k in wallet import format: base58check over version, the 32
// byte key, and a 0x01 marker when compressed is set.
func (k *PrivateKey) WIF(version byte, compressed bool) string {
	payload := make([]byte, 0, PrivateKeyLength+1)
	payload = append(payload, k.Serialize()...)
	if compressed {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload, version)
}

// PrivateKeyFromWIF decodes a wallet import format string. It returns the
// key, whether its public key is to be serialized compressed, and the
// version byte.
func PrivateKeyFromWIF(wif string) (key *PrivateKey, compressed bool, version byte, err error) {
	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, false, 0, errors.Wrapf(ErrInvalidWIF, "%s", err)
	}

	switch len(payload) {
	case PrivateKeyLength:
	case PrivateKeyLength + 1:
		if payload[PrivateKeyLength] != compressMagic {
			return nil, false, 0, errors.Wrapf(ErrInvalidWIF, "unexpected compression marker %#x",
				payload[PrivateKeyLength])
		}
		compressed = true
	default:
		return nil, false, 0, errors.Wrapf(ErrInvalidWIF, "payload has %d bytes", len(payload))
	}

	key, err = PrivateKeyFromBytes(payload[:PrivateKeyLength])
	if err != nil {
		return nil, false, 0, err
	}
	return key, compressed, version, nil
}
