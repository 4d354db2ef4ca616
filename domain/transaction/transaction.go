package transaction

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/pkg/errors"
)

// IDLength is the size of a transaction ID in bytes.
const IDLength = 32

// ID identifies a transaction.
type ID [IDLength]byte

// IDFromString parses a hex encoded transaction ID.
func IDFromString(s string) (ID, error) {
	var id ID
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return id, errors.Wrapf(err, "transaction ID %q is not hex", s)
	}
	if len(decoded) != IDLength {
		return id, errors.Errorf("transaction ID %q has %d bytes, want %d", s, len(decoded), IDLength)
	}
	copy(id[:], decoded)
	return id, nil
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Outpoint references an output of a previous transaction.
type Outpoint struct {
	TransactionID ID
	Index         uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TransactionID, o.Index)
}

// Input spends a previous output. Its unlocking script is either stored as
// a template plus substitution values, filled in by FinalizedScript, or
// stored already finalized in UnlockingScript.
type Input struct {
	PreviousOutpoint Outpoint
	Sequence         uint64

	UnlockingTemplate *txscript.ScriptTemplate
	Values            [][]byte
	UnlockingScript   *txscript.Script

	// PreviousLockingScript and PreviousValue describe the spent output
	// when the decoder knows them.
	PreviousLockingScript *txscript.Script
	PreviousValue         *uint64
}

// NewTemplateInput returns an input whose unlocking script is built from
// template. Its values start unresolved.
func NewTemplateInput(previousOutpoint Outpoint, template *txscript.ScriptTemplate, sequence uint64) *Input {
	return &Input{
		PreviousOutpoint:  previousOutpoint,
		Sequence:          sequence,
		UnlockingTemplate: template,
		Values:            make([][]byte, template.WildcardCount()),
	}
}

// SetValue resolves the substitution value of a wildcard slot of the
// unlocking template.
func (in *Input) SetValue(slot int, value []byte) error {
	if in.UnlockingTemplate == nil {
		return errors.Errorf("input spending %s has no unlocking template", in.PreviousOutpoint)
	}
	if slot < 0 || slot >= len(in.Values) {
		return errors.Errorf("slot %d is out of range for %d values", slot, len(in.Values))
	}
	in.Values[slot] = append([]byte(nil), value...)
	return nil
}

// FinalizedScript returns the concrete script of the input: the finalized
// unlocking template, or the stored unlocking script, followed by the
// locking script of the spent output when it is known.
func (in *Input) FinalizedScript() (*txscript.Script, error) {
	unlocking := in.UnlockingScript
	if in.UnlockingTemplate != nil {
		var err error
		unlocking, err = txscript.Finalize(in.UnlockingTemplate, in.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot finalize input spending %s", in.PreviousOutpoint)
		}
	}
	if in.PreviousLockingScript == nil {
		if unlocking == nil {
			return &txscript.Script{}, nil
		}
		return unlocking, nil
	}
	return unlocking.Concat(in.PreviousLockingScript), nil
}

// Output locks an amount to a script.
type Output struct {
	Value         uint64
	LockingScript *txscript.Script
}

// Transaction is a decoded transaction. The wire decoder owns its
// construction; this package only reads it.
type Transaction struct {
	Version  uint16
	Inputs   []*Input
	Outputs  []*Output
	LockTime uint64
}

// Input returns the input at index.
func (tx *Transaction) Input(index int) (*Input, bool) {
	if index < 0 || index >= len(tx.Inputs) {
		return nil, false
	}
	return tx.Inputs[index], true
}

// Output returns the output at index.
func (tx *Transaction) Output(index int) (*Output, bool) {
	if index < 0 || index >= len(tx.Outputs) {
		return nil, false
	}
	return tx.Outputs[index], true
}
