package transaction

import (
	"github.com/kaspanet/txtemplate/domain/txscript"
)

// MatchCriteria collects the predicates an input or output must satisfy.
// Every predicate is optional; build the criteria with the chaining setters
// and treat it as read-only afterwards.
type MatchCriteria struct {
	scriptTemplate *txscript.ScriptTemplate
	value          *uint64
	minValue       *uint64
	maxValue       *uint64
}

// NewMatchCriteria returns an empty criteria set.
func NewMatchCriteria() *MatchCriteria {
	return &MatchCriteria{}
}

// SetScriptTemplate requires the script to match template, replacing any
// template set before.
func (c *MatchCriteria) SetScriptTemplate(template *txscript.ScriptTemplate) *MatchCriteria {
	c.scriptTemplate = template
	return c
}

// SetValue requires the value to equal value exactly.
func (c *MatchCriteria) SetValue(value uint64) *MatchCriteria {
	c.value = &value
	return c
}

// SetMinValue requires the value to be at least minValue.
func (c *MatchCriteria) SetMinValue(minValue uint64) *MatchCriteria {
	c.minValue = &minValue
	return c
}

// SetMaxValue requires the value to be at most maxValue.
func (c *MatchCriteria) SetMaxValue(maxValue uint64) *MatchCriteria {
	c.maxValue = &maxValue
	return c
}

// ScriptTemplate returns the required template, or nil. A nil criteria has
// no template.
func (c *MatchCriteria) ScriptTemplate() *txscript.ScriptTemplate {
	if c == nil {
		return nil
	}
	return c.scriptTemplate
}

func (c *MatchCriteria) hasValuePredicate() bool {
	return c.value != nil || c.minValue != nil || c.maxValue != nil
}

// matchValue checks the value predicates. An unknown value fails every set
// predicate.
func (c *MatchCriteria) matchValue(value *uint64) bool {
	if !c.hasValuePredicate() {
		return true
	}
	if value == nil {
		return false
	}
	if c.value != nil && *value != *c.value {
		return false
	}
	if c.minValue != nil && *value < *c.minValue {
		return false
	}
	if c.maxValue != nil && *value > *c.maxValue {
		return false
	}
	return true
}

// Match checks script and value against every set predicate. A criteria
// without a script template, or a nil criteria, matches nothing.
func (c *MatchCriteria) Match(script *txscript.Script, value *uint64) ([]txscript.Capture, bool) {
	if c.ScriptTemplate() == nil {
		return nil, false
	}
	if !c.matchValue(value) {
		return nil, false
	}
	captures, err := txscript.Match(script, c.scriptTemplate)
	if err != nil {
		return nil, false
	}
	return captures, true
}
