package txscript

// Finalize builds a concrete script from template by replacing every
// wildcard slot, in slot order, with a push of the matching value. Literal
// elements are copied. A nil value is unresolved. Value lengths are left to
// whoever matches the result; use Validate to check them up front.
func Finalize(template *ScriptTemplate, values [][]byte) (*Script, error) {
	if template.WildcardCount() != len(values) {
		return nil, &ArityMismatchError{Slots: template.WildcardCount(), Values: len(values)}
	}

	elements := make([]Element, 0, template.Len())
	slot := 0
	for i := 0; i < template.Len(); i++ {
		templateElement := template.elements[i]
		var value []byte
		if templateElement.kind == Wildcard {
			value = values[slot]
		}
		element, err := templateElement.fill(slot, value)
		if err != nil {
			return nil, err
		}
		if templateElement.kind == Wildcard {
			slot++
		}
		elements = append(elements, element)
	}
	return &Script{elements: elements}, nil
}

// Finalize fills t with values. See Finalize.
func (t *ScriptTemplate) Finalize(values [][]byte) (*Script, error) {
	return Finalize(t, values)
}

// Validate reports whether values can fill t such that the finalized script
// matches t again: the arity must agree, every value must be resolved and
// every length must be accepted by its slot kind. Finalize does not require
// this.
func (t *ScriptTemplate) Validate(values [][]byte) error {
	wildcards := t.Wildcards()
	if len(wildcards) != len(values) {
		return &ArityMismatchError{Slots: len(wildcards), Values: len(values)}
	}
	for slot, kind := range wildcards {
		value := values[slot]
		if value == nil {
			return &UnresolvedValueError{Slot: slot}
		}
		if len(value) == 0 || !kind.Accepts(len(value)) {
			return &InvalidValueError{Slot: slot, Kind: kind, Length: len(value)}
		}
	}
	return nil
}
