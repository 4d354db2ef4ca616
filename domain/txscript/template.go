package txscript

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// TemplateElementKind distinguishes literal template elements from
// wildcard slots.
type TemplateElementKind uint8

// Template element kinds.
const (
	LiteralOpcode TemplateElementKind = iota
	LiteralData
	Wildcard
)

// TemplateElement is one position of a ScriptTemplate.
type TemplateElement struct {
	kind     TemplateElementKind
	opcode   Opcode
	data     []byte
	wildcard WildcardKind
}

// LiteralOpcodeElement matches exactly op. Like OpcodeElement it panics if
// op has no mnemonic.
func LiteralOpcodeElement(op Opcode) TemplateElement {
	if !op.IsKnown() {
		panic(errors.Errorf("opcode %s cannot be a template element", op))
	}
	return TemplateElement{kind: LiteralOpcode, opcode: op}
}

// LiteralDataElement matches a push of exactly data. An empty data is the
// Op0 opcode, mirroring DataElement.
func LiteralDataElement(data []byte) TemplateElement {
	if len(data) == 0 {
		return LiteralOpcodeElement(Op0)
	}
	return TemplateElement{kind: LiteralData, data: append([]byte(nil), data...)}
}

// WildcardElement matches any push accepted by kind.
func WildcardElement(kind WildcardKind) TemplateElement {
	return TemplateElement{kind: Wildcard, wildcard: kind}
}

// Kind returns the element kind.
func (te TemplateElement) Kind() TemplateElementKind {
	return te.kind
}

// Wildcard returns the slot kind of a Wildcard element.
func (te TemplateElement) Wildcard() (WildcardKind, bool) {
	return te.wildcard, te.kind == Wildcard
}

// String renders the element as a template token.
func (te TemplateElement) String() string {
	switch te.kind {
	case LiteralData:
		return hex.EncodeToString(te.data)
	case Wildcard:
		return te.wildcard.String()
	default:
		return te.opcode.String()
	}
}

// match compares a single script element against te. captured is set when
// te is a wildcard that accepted the element.
func (te TemplateElement) match(element Element) (capture Capture, captured bool, ok bool) {
	switch te.kind {
	case LiteralOpcode:
		return Capture{}, false, !element.IsDataPush() && element.opcode == te.opcode
	case LiteralData:
		return Capture{}, false, element.IsDataPush() && bytes.Equal(element.data, te.data)
	case Wildcard:
		if !element.IsDataPush() || !te.wildcard.Accepts(len(element.data)) {
			return Capture{}, false, false
		}
		return Capture{Type: te.wildcard.Type(), Data: element.Data()}, true, true
	}
	return Capture{}, false, false
}

// fill turns te into a script element, consuming value when te is a
// wildcard. The value length is not checked against the slot kind.
func (te TemplateElement) fill(slot int, value []byte) (Element, error) {
	switch te.kind {
	case LiteralData:
		return DataElement(te.data), nil
	case Wildcard:
		if value == nil {
			return Element{}, &UnresolvedValueError{Slot: slot}
		}
		return DataElement(value), nil
	default:
		return OpcodeElement(te.opcode), nil
	}
}

// ScriptTemplate is an immutable, parsed script pattern. A template may be
// shared and used for any number of concurrent matches.
type ScriptTemplate struct {
	elements      []TemplateElement
	wildcardCount int
}

// NewScriptTemplate returns a template made of the given elements.
func NewScriptTemplate(elements ...TemplateElement) *ScriptTemplate {
	template := &ScriptTemplate{elements: append([]TemplateElement(nil), elements...)}
	for _, element := range elements {
		if element.kind == Wildcard {
			template.wildcardCount++
		}
	}
	return template
}

// ParseTemplate parses template assembly. On top of the script grammar it
// accepts the wildcard tokens OP_DATA, OP_DATA=<n>, OP_PUBKEY,
// OP_PUBKEYHASH and OP_SIG.
func ParseTemplate(asm string) (*ScriptTemplate, error) {
	tokens := strings.Fields(asm)
	elements := make([]TemplateElement, 0, len(tokens))
	for position, token := range tokens {
		kind, isWildcard, err := parseWildcardToken(position, token)
		if err != nil {
			return nil, err
		}
		if isWildcard {
			elements = append(elements, WildcardElement(kind))
			continue
		}

		element, err := parseElementToken(position, token)
		if err != nil {
			return nil, err
		}
		if element.IsDataPush() {
			elements = append(elements, LiteralDataElement(element.data))
		} else {
			elements = append(elements, LiteralOpcodeElement(element.opcode))
		}
	}
	return NewScriptTemplate(elements...), nil
}

// MustParseTemplate is like ParseTemplate but panics on error. It is meant
// for package-level literals.
func MustParseTemplate(asm string) *ScriptTemplate {
	template, err := ParseTemplate(asm)
	if err != nil {
		panic(err)
	}
	return template
}

// Len returns the number of template elements.
func (t *ScriptTemplate) Len() int {
	if t == nil {
		return 0
	}
	return len(t.elements)
}

// Element returns the template element at index i.
func (t *ScriptTemplate) Element(i int) TemplateElement {
	return t.elements[i]
}

// WildcardCount returns the number of wildcard slots.
func (t *ScriptTemplate) WildcardCount() int {
	if t == nil {
		return 0
	}
	return t.wildcardCount
}

// Wildcards returns the slot kinds in slot order.
func (t *ScriptTemplate) Wildcards() []WildcardKind {
	kinds := make([]WildcardKind, 0, t.WildcardCount())
	for i := 0; i < t.Len(); i++ {
		if kind, ok := t.elements[i].Wildcard(); ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// String renders the template in assembly notation. ParseTemplate of the
// result reproduces the template.
func (t *ScriptTemplate) String() string {
	tokens := make([]string, t.Len())
	for i := range tokens {
		tokens[i] = t.elements[i].String()
	}
	return strings.Join(tokens, " ")
}
