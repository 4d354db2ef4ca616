package txscript

import (
	"fmt"

	"github.com/pkg/errors"
)

// These sentinels classify every error returned by this package. The typed
// errors below carry detail and report a match against their sentinel via
// errors.Is.
var (
	// ErrParse means an assembly token could not be parsed.
	ErrParse = errors.New("malformed script assembly")

	// ErrMalformedPush means a serialized script ends inside a data push
	// or contains an opcode byte outside the known table.
	ErrMalformedPush = errors.New("malformed script bytes")

	// ErrLengthMismatch means the script and the template have a different
	// number of elements.
	ErrLengthMismatch = errors.New("script and template lengths differ")

	// ErrElementMismatch means a script element was rejected by the
	// template element at the same position.
	ErrElementMismatch = errors.New("script element does not match template")

	// ErrArityMismatch means the number of substitution values differs from
	// the number of wildcard slots.
	ErrArityMismatch = errors.New("substitution value count does not match wildcard slots")

	// ErrUnresolvedValue means a substitution value is still missing.
	ErrUnresolvedValue = errors.New("substitution value is unresolved")

	// ErrInvalidValue means a substitution value cannot fill its wildcard
	// slot.
	ErrInvalidValue = errors.New("substitution value does not fit its wildcard slot")
)

// ParseError describes the token that failed to parse.
type ParseError struct {
	Position    int
	Token       string
	Description string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %s", e.Position, e.Token, e.Description)
}

// Is implements the errors.Is interface.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LengthMismatchError reports the element counts of a failed match.
type LengthMismatchError struct {
	ScriptLength   int
	TemplateLength int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: script has %d elements, template has %d",
		ErrLengthMismatch, e.ScriptLength, e.TemplateLength)
}

// Is implements the errors.Is interface.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// ElementMismatchError reports the first position at which a match failed.
type ElementMismatchError struct {
	Index    int
	Expected TemplateElement
	Found    Element
}

func (e *ElementMismatchError) Error() string {
	return fmt.Sprintf("%s: at index %d expected %s, found %s",
		ErrElementMismatch, e.Index, e.Expected, e.Found.describe())
}

// Is implements the errors.Is interface.
func (e *ElementMismatchError) Is(target error) bool {
	return target == ErrElementMismatch
}

// ArityMismatchError reports the slot and value counts of a failed
// finalization.
type ArityMismatchError struct {
	Slots  int
	Values int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: template has %d wildcard slots, got %d values",
		ErrArityMismatch, e.Slots, e.Values)
}

// Is implements the errors.Is interface.
func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// UnresolvedValueError reports the wildcard slot whose value is missing.
type UnresolvedValueError struct {
	Slot int
}

func (e *UnresolvedValueError) Error() string {
	return fmt.Sprintf("%s: slot %d", ErrUnresolvedValue, e.Slot)
}

// Is implements the errors.Is interface.
func (e *UnresolvedValueError) Is(target error) bool {
	return target == ErrUnresolvedValue
}

// InvalidValueError reports a value whose length its slot rejects.
type InvalidValueError struct {
	Slot   int
	Kind   WildcardKind
	Length int
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: slot %d (%s) cannot hold %d bytes",
		ErrInvalidValue, e.Slot, e.Kind, e.Length)
}

// Is implements the errors.Is interface.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
