package txscript

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Element is a single script element: either an opcode or a data push.
// A data push always carries at least one byte; an empty push is the Op0
// opcode.
type Element struct {
	opcode Opcode
	data   []byte
}

// OpcodeElement returns an element executing op. It panics if op has no
// mnemonic, push opcodes included; use DataElement for pushes and
// ScriptBuilder when the opcode comes from input.
func OpcodeElement(op Opcode) Element {
	if !op.IsKnown() {
		panic(errors.Errorf("opcode %s cannot be a script element", op))
	}
	return Element{opcode: op}
}

// DataElement returns an element pushing a copy of data. An empty data is
// the Op0 opcode.
func DataElement(data []byte) Element {
	if len(data) == 0 {
		return Element{opcode: Op0}
	}
	return Element{data: append([]byte(nil), data...)}
}

// IsDataPush returns whether the element pushes data.
func (e Element) IsDataPush() bool {
	return e.data != nil
}

// Opcode returns the element's opcode. It is meaningless for data pushes.
func (e Element) Opcode() Opcode {
	return e.opcode
}

// Data returns a copy of the pushed bytes, or nil for opcode elements.
func (e Element) Data() []byte {
	if e.data == nil {
		return nil
	}
	return append([]byte(nil), e.data...)
}

// Equal returns whether both elements are the same opcode or push the same
// bytes.
func (e Element) Equal(other Element) bool {
	if e.IsDataPush() != other.IsDataPush() {
		return false
	}
	if e.IsDataPush() {
		return bytes.Equal(e.data, other.data)
	}
	return e.opcode == other.opcode
}

// String renders the element as an assembly token.
func (e Element) String() string {
	if e.IsDataPush() {
		return hex.EncodeToString(e.data)
	}
	return e.opcode.String()
}

func (e Element) describe() string {
	if e.IsDataPush() {
		return fmt.Sprintf("%d byte push", len(e.data))
	}
	return e.opcode.String()
}

// Script is an immutable sequence of elements. The zero value is the empty
// script. Scripts hold no mutable state and may be shared between
// goroutines.
type Script struct {
	elements []Element
}

// NewScript returns a script made of the given elements.
func NewScript(elements ...Element) *Script {
	return &Script{elements: append([]Element(nil), elements...)}
}

// ParseScript parses whitespace separated assembly into a script. Every
// token must be an opcode mnemonic or an even-length hex string.
func ParseScript(asm string) (*Script, error) {
	tokens := strings.Fields(asm)
	elements := make([]Element, 0, len(tokens))
	for position, token := range tokens {
		if _, isWildcard, _ := parseWildcardToken(position, token); isWildcard {
			return nil, &ParseError{
				Position:    position,
				Token:       token,
				Description: "wildcard tokens are only valid in templates",
			}
		}
		element, err := parseElementToken(position, token)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return &Script{elements: elements}, nil
}

// MustParseScript is like ParseScript but panics on error. It is meant for
// package-level literals.
func MustParseScript(asm string) *Script {
	script, err := ParseScript(asm)
	if err != nil {
		panic(err)
	}
	return script
}

// parseElementToken parses a single literal token. Both the script and the
// template parser go through it.
func parseElementToken(position int, token string) (Element, error) {
	if strings.HasPrefix(token, "OP_") {
		opcode, ok := OpcodeByName[token]
		if !ok {
			return Element{}, &ParseError{Position: position, Token: token, Description: "unknown opcode"}
		}
		return OpcodeElement(opcode), nil
	}
	if len(token)%2 != 0 {
		return Element{}, &ParseError{Position: position, Token: token, Description: "odd length hex data"}
	}
	data, err := hex.DecodeString(token)
	if err != nil {
		return Element{}, &ParseError{Position: position, Token: token, Description: "neither an opcode nor hex data"}
	}
	return DataElement(data), nil
}

// Len returns the number of elements. A nil script is empty.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}

// Element returns the element at index i.
func (s *Script) Element(i int) Element {
	return s.elements[i]
}

// Elements returns a copy of the script's elements.
func (s *Script) Elements() []Element {
	if s == nil {
		return nil
	}
	return append([]Element(nil), s.elements...)
}

// Equal returns whether both scripts are element-wise identical.
func (s *Script) Equal(other *Script) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if !s.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// Concat returns a new script made of s followed by other.
func (s *Script) Concat(other *Script) *Script {
	elements := make([]Element, 0, s.Len()+other.Len())
	elements = append(elements, s.Elements()...)
	elements = append(elements, other.Elements()...)
	return &Script{elements: elements}
}

// String renders the script in assembly notation. ParseScript of the result
// reproduces the script.
func (s *Script) String() string {
	tokens := make([]string, s.Len())
	for i := range tokens {
		tokens[i] = s.elements[i].String()
	}
	return strings.Join(tokens, " ")
}
