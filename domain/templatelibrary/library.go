package templatelibrary

import (
	"fmt"
	"sync"

	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/pkg/errors"
)

// ErrDuplicateName is returned when adding a template under a name the
// library already holds.
var ErrDuplicateName = errors.New("duplicate template name")

// Library is an ordered set of named script templates. Classification tries
// the templates in the order they were added.
type Library struct {
	lock      sync.RWMutex
	names     []string
	templates map[string]*txscript.ScriptTemplate
}

// New returns an empty library.
func New() *Library {
	return &Library{templates: make(map[string]*txscript.ScriptTemplate)}
}

// Standard returns a library holding the standard script shapes, named
// after their script class.
func Standard() *Library {
	library := New()
	classes := []txscript.ScriptClass{
		txscript.PubKeyHashTy,
		txscript.PubKeyTy,
		txscript.ScriptHashTy,
		txscript.NullDataTy,
		txscript.PubKeyHashSigTy,
		txscript.PubKeySigTy,
	}
	for _, class := range classes {
		for i, template := range txscript.StandardTemplates(class) {
			name := class.String()
			if i > 0 {
				name = fmt.Sprintf("%s-%d", name, i)
			}
			// Names are distinct, so Add cannot fail.
			_ = library.Add(name, template)
		}
	}
	return library
}

// Add appends template under name.
func (l *Library) Add(name string, template *txscript.ScriptTemplate) error {
	if name == "" {
		return errors.New("template name is empty")
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, exists := l.templates[name]; exists {
		return errors.Wrapf(ErrDuplicateName, "template %q", name)
	}
	l.names = append(l.names, name)
	l.templates[name] = template
	return nil
}

// Get returns the template named name.
func (l *Library) Get(name string) (*txscript.ScriptTemplate, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	template, ok := l.templates[name]
	return template, ok
}

// Names returns the template names in insertion order.
func (l *Library) Names() []string {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return append([]string(nil), l.names...)
}

// Len returns the number of templates.
func (l *Library) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return len(l.names)
}

// Classify returns the name and captures of the first template script
// matches.
func (l *Library) Classify(script *txscript.Script) (name string, captures []txscript.Capture, ok bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	for _, name := range l.names {
		captures, err := txscript.Match(script, l.templates[name])
		if err == nil {
			return name, captures, true
		}
		log.Tracef("Script does not match %s: %s", name, err)
	}
	return "", nil, false
}

// Merge adds every template of other after the templates of l. If any name
// of other is already in l, nothing is added.
func (l *Library) Merge(other *Library) error {
	other.lock.RLock()
	names := append([]string(nil), other.names...)
	templates := make([]*txscript.ScriptTemplate, len(names))
	for i, name := range names {
		templates[i] = other.templates[name]
	}
	other.lock.RUnlock()

	l.lock.Lock()
	defer l.lock.Unlock()

	for _, name := range names {
		if _, exists := l.templates[name]; exists {
			return errors.Wrapf(ErrDuplicateName, "template %q", name)
		}
	}
	for i, name := range names {
		l.names = append(l.names, name)
		l.templates[name] = templates[i]
	}
	return nil
}
