package txscript

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/kaspanet/txtemplate/infrastructure/logger"
)

// Capture is the data extracted by one wildcard slot.
type Capture struct {
	Type MatchDataType
	Data []byte
}

func (c Capture) String() string {
	return fmt.Sprintf("%s:%s", c.Type, hex.EncodeToString(c.Data))
}

// Match compares script against template position by position and returns
// one capture per wildcard slot, in slot order. Matching never skips or
// realigns elements: the counts must be equal and the first rejected
// element ends the match with an *ElementMismatchError.
func Match(script *Script, template *ScriptTemplate) ([]Capture, error) {
	if script.Len() != template.Len() {
		return nil, &LengthMismatchError{ScriptLength: script.Len(), TemplateLength: template.Len()}
	}

	captures := make([]Capture, 0, template.WildcardCount())
	for i := 0; i < template.Len(); i++ {
		expected, found := template.elements[i], script.elements[i]
		capture, captured, ok := expected.match(found)
		if !ok {
			return nil, &ElementMismatchError{Index: i, Expected: expected, Found: found}
		}
		if captured {
			captures = append(captures, capture)
		}
	}

	log.Tracef("Script matched template %s with captures %s", template, logger.NewLogClosure(func() string {
		return formatCaptures(captures)
	}))
	return captures, nil
}

// Matches matches s against template. See Match.
func (s *Script) Matches(template *ScriptTemplate) ([]Capture, error) {
	return Match(s, template)
}

// IsMatch returns whether s matches template, discarding the captures and
// the failure detail.
func (s *Script) IsMatch(template *ScriptTemplate) bool {
	_, err := Match(s, template)
	return err == nil
}

func formatCaptures(captures []Capture) string {
	parts := make([]string, len(captures))
	for i, capture := range captures {
		parts[i] = capture.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
