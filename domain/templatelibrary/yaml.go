package templatelibrary

import (
	"io"
	"os"
	"strings"

	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a library file:
//
//	templates:
//	  - name: p2pkh
//	    script: OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG
type document struct {
	Templates []entry `yaml:"templates"`
}

type entry struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"`
}

// LoadYAML reads a library document from r.
func LoadYAML(r io.Reader) (*Library, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to decode template library")
	}

	library := New()
	for i, e := range doc.Templates {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errors.Errorf("template #%d has no name", i)
		}
		template, err := txscript.ParseTemplate(e.Script)
		if err != nil {
			return nil, errors.Wrapf(err, "template %q", name)
		}
		err = library.Add(name, template)
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("Loaded %d templates", library.Len())
	return library, nil
}

// LoadFile reads a library document from path.
func LoadFile(path string) (*Library, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open template library %s", path)
	}
	defer file.Close()

	library, err := LoadYAML(file)
	if err != nil {
		return nil, errors.Wrapf(err, "template library %s", path)
	}
	return library, nil
}

// WriteYAML writes l as a library document to w.
func (l *Library) WriteYAML(w io.Writer) error {
	var doc document
	for _, name := range l.Names() {
		template, _ := l.Get(name)
		doc.Templates = append(doc.Templates, entry{Name: name, Script: template.String()})
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(&doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode template library")
	}
	return errors.WithStack(encoder.Close())
}
