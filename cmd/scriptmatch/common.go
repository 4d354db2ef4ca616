package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/pkg/errors"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

// parse returns the script given either in assembly or in serialized form.
func (f *ScriptFlags) parse() (*txscript.Script, error) {
	switch {
	case f.Script != "" && f.ScriptHex != "":
		return nil, errors.New("both --script and --script-hex are set")
	case f.ScriptHex != "":
		serialized, err := hex.DecodeString(f.ScriptHex)
		if err != nil {
			return nil, errors.Wrap(err, "--script-hex is not hex")
		}
		return txscript.ParseScriptBytes(serialized)
	case f.Script != "":
		return txscript.ParseScript(f.Script)
	}
	return nil, errors.New("one of --script and --script-hex is required")
}

// parseHexValues decodes substitution values. An empty string stands for an
// unresolved value.
func parseHexValues(values []string) ([][]byte, error) {
	decoded := make([][]byte, len(values))
	for i, value := range values {
		if value == "" {
			continue
		}
		data, err := hex.DecodeString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "value #%d is not hex", i)
		}
		decoded[i] = data
	}
	return decoded, nil
}

func writeCaptures(out io.Writer, captures []txscript.Capture) {
	for i, capture := range captures {
		fmt.Fprintf(out, "%d %s %x\n", i, capture.Type, capture.Data)
	}
}
