package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kaspanet/txtemplate/domain/transaction"
	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// transactionFile is the YAML layout read by the filter command:
//
//	version: 1
//	inputs:
//	  - outpoint: <transaction ID>:<index>
//	    unlocking_template: OP_SIG OP_PUBKEY
//	    values: [<hex>, <hex>]
//	    previous_locking_script: OP_DUP OP_HASH160 <hex> OP_EQUALVERIFY OP_CHECKSIG
//	    previous_value: 50000
//	outputs:
//	  - value: 49000
//	    locking_script: OP_DUP OP_HASH160 <hex> OP_EQUALVERIFY OP_CHECKSIG
type transactionFile struct {
	Version  uint16       `yaml:"version"`
	Inputs   []inputFile  `yaml:"inputs"`
	Outputs  []outputFile `yaml:"outputs"`
	LockTime uint64       `yaml:"lock_time"`
}

type inputFile struct {
	Outpoint              string   `yaml:"outpoint"`
	Sequence              uint64   `yaml:"sequence"`
	UnlockingTemplate     string   `yaml:"unlocking_template"`
	Values                []string `yaml:"values"`
	UnlockingScript       string   `yaml:"unlocking_script"`
	PreviousLockingScript string   `yaml:"previous_locking_script"`
	PreviousValue         *uint64  `yaml:"previous_value"`
}

type outputFile struct {
	Value         uint64 `yaml:"value"`
	LockingScript string `yaml:"locking_script"`
}

func loadTransactionFile(path string) (*transaction.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open transaction file %s", path)
	}
	defer file.Close()

	tx, err := decodeTransaction(file)
	if err != nil {
		return nil, errors.Wrapf(err, "transaction file %s", path)
	}
	return tx, nil
}

func decodeTransaction(r io.Reader) (*transaction.Transaction, error) {
	var doc transactionFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction")
	}

	tx := &transaction.Transaction{
		Version:  doc.Version,
		Inputs:   make([]*transaction.Input, len(doc.Inputs)),
		Outputs:  make([]*transaction.Output, len(doc.Outputs)),
		LockTime: doc.LockTime,
	}
	for i, in := range doc.Inputs {
		tx.Inputs[i], err = in.toInput()
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
	}
	for i, out := range doc.Outputs {
		lockingScript, err := txscript.ParseScript(out.LockingScript)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
		tx.Outputs[i] = &transaction.Output{Value: out.Value, LockingScript: lockingScript}
	}
	return tx, nil
}

func (in *inputFile) toInput() (*transaction.Input, error) {
	outpoint, err := parseOutpoint(in.Outpoint)
	if err != nil {
		return nil, err
	}
	input := &transaction.Input{
		PreviousOutpoint: outpoint,
		Sequence:         in.Sequence,
		PreviousValue:    in.PreviousValue,
	}

	switch {
	case in.UnlockingTemplate != "" && in.UnlockingScript != "":
		return nil, errors.New("both unlocking_template and unlocking_script are set")
	case in.UnlockingTemplate != "":
		template, err := txscript.ParseTemplate(in.UnlockingTemplate)
		if err != nil {
			return nil, err
		}
		input.UnlockingTemplate = template
		input.Values, err = parseHexValues(in.Values)
		if err != nil {
			return nil, err
		}
	case in.UnlockingScript != "":
		input.UnlockingScript, err = txscript.ParseScript(in.UnlockingScript)
		if err != nil {
			return nil, err
		}
	}

	if in.PreviousLockingScript != "" {
		input.PreviousLockingScript, err = txscript.ParseScript(in.PreviousLockingScript)
		if err != nil {
			return nil, err
		}
	}
	return input, nil
}

// parseOutpoint parses "<transaction ID>:<index>". An empty string is the
// zero outpoint.
func parseOutpoint(s string) (transaction.Outpoint, error) {
	if s == "" {
		return transaction.Outpoint{}, nil
	}
	separator := strings.LastIndexByte(s, ':')
	if separator < 0 {
		return transaction.Outpoint{}, errors.Errorf("outpoint %q is not <transaction ID>:<index>", s)
	}
	id, err := transaction.IDFromString(s[:separator])
	if err != nil {
		return transaction.Outpoint{}, err
	}
	index, err := strconv.ParseUint(s[separator+1:], 10, 32)
	if err != nil {
		return transaction.Outpoint{}, errors.Wrapf(err, "outpoint %q has a bad index", s)
	}
	return transaction.Outpoint{TransactionID: id, Index: uint32(index)}, nil
}
