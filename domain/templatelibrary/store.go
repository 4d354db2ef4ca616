package templatelibrary

import (
	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/kaspanet/txtemplate/infrastructure/db/database"
	"github.com/kaspanet/txtemplate/infrastructure/logger"
	"github.com/pkg/errors"
)

var templateBucket = database.MakeBucket([]byte("template"))

// Store persists named templates in a database. Templates are stored in
// their assembly notation.
type Store struct {
	db database.Database
}

// NewStore returns a store over db.
func NewStore(db database.Database) *Store {
	return &Store{db: db}
}

// Put stores template under name, replacing any previous template.
func (s *Store) Put(name string, template *txscript.ScriptTemplate) error {
	if name == "" {
		return errors.New("template name is empty")
	}
	log.Debugf("Storing template %s: %s", name, template)
	return s.db.Put(templateBucket.Key([]byte(name)), []byte(template.String()))
}

// Get loads the template stored under name. A missing name yields an error
// satisfying database.IsNotFoundError.
func (s *Store) Get(name string) (*txscript.ScriptTemplate, error) {
	asm, err := s.db.Get(templateBucket.Key([]byte(name)))
	if err != nil {
		return nil, err
	}
	template, err := txscript.ParseTemplate(string(asm))
	if err != nil {
		return nil, errors.Wrapf(err, "stored template %q is corrupt", name)
	}
	return template, nil
}

// Delete removes the template stored under name.
func (s *Store) Delete(name string) error {
	exists, err := s.db.Has(templateBucket.Key([]byte(name)))
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(database.ErrNotFound, "template %q", name)
	}
	return s.db.Delete(templateBucket.Key([]byte(name)))
}

// Library loads every stored template, ordered by name.
func (s *Store) Library() (*Library, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "Store.Library")
	defer onEnd()

	cursor, err := s.db.Cursor(templateBucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	library := New()
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		value, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		name := string(key)
		template, err := txscript.ParseTemplate(string(value))
		if err != nil {
			return nil, errors.Wrapf(err, "stored template %q is corrupt", name)
		}
		err = library.Add(name, template)
		if err != nil {
			return nil, err
		}
	}
	return library, nil
}
