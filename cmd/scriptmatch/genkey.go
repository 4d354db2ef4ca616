package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/keys"
)

func genKey(conf *genKeyConfig, out io.Writer) error {
	var mnemonic, password string
	var err error
	if conf.ImportMnemonic {
		mnemonic, err = readSecret("Mnemonic: ")
		if err != nil {
			return err
		}
		password, err = readSecret("Password (may be empty): ")
		if err != nil {
			return err
		}
	} else {
		mnemonic, err = keys.NewMnemonic()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Mnemonic: %s\n", mnemonic)
	}

	privateKey, err := keys.PrivateKeyFromMnemonic(mnemonic, password)
	if err != nil {
		return err
	}
	return writeKey(out, privateKey, conf.NetParams().WIFVersion)
}

func writeKey(out io.Writer, privateKey *keys.PrivateKey, wifVersion byte) error {
	publicKey := privateKey.PublicKey()
	fmt.Fprintf(out, "Private key (WIF): %s\n", privateKey.WIF(wifVersion, true))
	fmt.Fprintf(out, "Private key (hex): %s\n", privateKey.Hex())
	fmt.Fprintf(out, "Public key: %x\n", publicKey.Serialize(true))
	fmt.Fprintf(out, "Public key hash: %x\n", publicKey.Hash160(true))
	return nil
}
