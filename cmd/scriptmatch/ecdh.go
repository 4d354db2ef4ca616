package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/keys"
	"github.com/pkg/errors"
)

func ecdh(conf *ecdhConfig, out io.Writer) error {
	wif := conf.PrivateKey
	if wif == "" {
		var err error
		wif, err = readSecret("Private key (WIF): ")
		if err != nil {
			return err
		}
	}

	privateKey, _, version, err := keys.PrivateKeyFromWIF(wif)
	if err != nil {
		return err
	}
	if version != conf.NetParams().WIFVersion {
		return errors.Errorf("the private key has version %#x, which is not of network %s",
			version, conf.NetParams().Name)
	}
	publicKey, err := keys.PublicKeyFromHex(conf.PublicKey)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Shared key: %x\n", keys.DeriveSharedKey(privateKey, publicKey))
	return nil
}
