// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// ScriptBuilder provides a facility for building custom scripts. Errors are
// sticky: once an invalid operation is added, Script returns the first
// error and later additions are ignored.
//
// For example, the following would build a pay-to-pubkey-hash script:
//
//	builder := txscript.NewScriptBuilder()
//	builder.AddOp(txscript.OpDup).AddOp(txscript.OpHash160)
//	builder.AddData(pubKeyHash).AddOp(txscript.OpEqualVerify)
//	builder.AddOp(txscript.OpCheckSig)
//	script, err := builder.Script()
type ScriptBuilder struct {
	elements []Element
	err      error
}

// NewScriptBuilder returns a new instance of a script builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

// AddOp appends an opcode. Push opcodes and opcodes without a mnemonic are
// rejected; use AddData for pushes.
func (b *ScriptBuilder) AddOp(opcode Opcode) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if !opcode.IsKnown() {
		b.err = errors.Errorf("opcode %s cannot be added as an instruction", opcode)
		return b
	}
	b.elements = append(b.elements, OpcodeElement(opcode))
	return b
}

// AddOps appends the given opcodes in order.
func (b *ScriptBuilder) AddOps(opcodes []Opcode) *ScriptBuilder {
	for _, opcode := range opcodes {
		b.AddOp(opcode)
	}
	return b
}

// AddData appends a push of data. An empty data appends Op0.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if uint64(len(data)) > math.MaxUint32 {
		b.err = errors.Errorf("data push of %d bytes exceeds the maximum push size", len(data))
		return b
	}
	b.elements = append(b.elements, DataElement(data))
	return b
}

// AddElement appends an already built element.
func (b *ScriptBuilder) AddElement(element Element) *ScriptBuilder {
	if element.IsDataPush() {
		return b.AddData(element.data)
	}
	return b.AddOp(element.opcode)
}

// Reset clears the builder and its sticky error.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.elements = b.elements[:0]
	b.err = nil
	return b
}

// Script returns the built script or the first error encountered.
func (b *ScriptBuilder) Script() (*Script, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewScript(b.elements...), nil
}

// pushPrefixLength returns the number of bytes that precede a push of
// dataLength bytes.
func pushPrefixLength(dataLength int) int {
	switch {
	case dataLength <= int(OpData75):
		return 1
	case dataLength <= math.MaxUint8:
		return 2
	case dataLength <= math.MaxUint16:
		return 3
	default:
		return 5
	}
}

// Bytes serializes the script. Each push uses the shortest push opcode for
// its length; opcodes are written as their byte.
func (s *Script) Bytes() []byte {
	size := 0
	for i := 0; i < s.Len(); i++ {
		element := s.elements[i]
		if element.IsDataPush() {
			size += pushPrefixLength(len(element.data)) + len(element.data)
		} else {
			size++
		}
	}

	serialized := make([]byte, 0, size)
	for i := 0; i < s.Len(); i++ {
		element := s.elements[i]
		if !element.IsDataPush() {
			serialized = append(serialized, byte(element.opcode))
			continue
		}

		dataLength := len(element.data)
		switch pushPrefixLength(dataLength) {
		case 1:
			serialized = append(serialized, byte(dataLength))
		case 2:
			serialized = append(serialized, byte(OpPushData1), byte(dataLength))
		case 3:
			serialized = append(serialized, byte(OpPushData2))
			serialized = binary.LittleEndian.AppendUint16(serialized, uint16(dataLength))
		default:
			serialized = append(serialized, byte(OpPushData4))
			serialized = binary.LittleEndian.AppendUint32(serialized, uint32(dataLength))
		}
		serialized = append(serialized, element.data...)
	}
	return serialized
}

// ParseScriptBytes decodes a serialized script. Any push encoding is
// accepted; a zero-length push decodes to Op0, the same element an empty
// push is built as.
func ParseScriptBytes(serialized []byte) (*Script, error) {
	var elements []Element
	for offset := 0; offset < len(serialized); {
		opcode := Opcode(serialized[offset])
		offset++

		if !opcode.IsPush() {
			if !opcode.IsKnown() {
				return nil, errors.Wrapf(ErrMalformedPush, "unknown opcode 0x%02x at offset %d", byte(opcode), offset-1)
			}
			elements = append(elements, OpcodeElement(opcode))
			continue
		}

		dataLength, prefixLength, err := readPushLength(opcode, serialized[offset:])
		if err != nil {
			return nil, errors.Wrapf(err, "at offset %d", offset-1)
		}
		offset += prefixLength
		if uint64(len(serialized)-offset) < dataLength {
			return nil, errors.Wrapf(ErrMalformedPush, "%s at offset %d needs %d bytes, %d remain",
				opcode, offset-prefixLength-1, dataLength, len(serialized)-offset)
		}
		end := offset + int(dataLength)
		elements = append(elements, DataElement(serialized[offset:end]))
		offset = end
	}
	return &Script{elements: elements}, nil
}

// readPushLength returns the length of the data introduced by opcode and the
// number of length bytes that follow opcode.
func readPushLength(opcode Opcode, rest []byte) (dataLength uint64, prefixLength int, err error) {
	switch opcode {
	case OpPushData1:
		prefixLength = 1
	case OpPushData2:
		prefixLength = 2
	case OpPushData4:
		prefixLength = 4
	default:
		return uint64(opcode), 0, nil
	}
	if len(rest) < prefixLength {
		return 0, 0, errors.Wrapf(ErrMalformedPush, "%s is missing its length", opcode)
	}
	switch prefixLength {
	case 1:
		dataLength = uint64(rest[0])
	case 2:
		dataLength = uint64(binary.LittleEndian.Uint16(rest))
	default:
		dataLength = uint64(binary.LittleEndian.Uint32(rest))
	}
	return dataLength, prefixLength, nil
}
