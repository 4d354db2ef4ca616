package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/templatelibrary"
	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/kaspanet/txtemplate/infrastructure/db/database/ldb"
)

func openStore(dataDir string) (store *templatelibrary.Store, teardown func(), err error) {
	db, err := ldb.NewLevelDB(dataDir)
	if err != nil {
		return nil, nil, err
	}
	teardown = func() {
		err := db.Close()
		if err != nil {
			log.Warnf("Failed to close the template store: %s", err)
		}
	}
	return templatelibrary.NewStore(db), teardown, nil
}

func libraryAdd(conf *libraryAddConfig, out io.Writer) error {
	template, err := txscript.ParseTemplate(conf.Template)
	if err != nil {
		return err
	}
	store, teardown, err := openStore(conf.DataDir)
	if err != nil {
		return err
	}
	defer teardown()

	err = store.Put(conf.Name, template)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Stored %s: %s\n", conf.Name, template)
	return nil
}

func libraryList(conf *libraryListConfig, out io.Writer) error {
	store, teardown, err := openStore(conf.DataDir)
	if err != nil {
		return err
	}
	defer teardown()

	library, err := store.Library()
	if err != nil {
		return err
	}
	return library.WriteYAML(out)
}

func libraryRemove(conf *libraryRemoveConfig, out io.Writer) error {
	store, teardown, err := openStore(conf.DataDir)
	if err != nil {
		return err
	}
	defer teardown()

	err = store.Delete(conf.Name)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed %s\n", conf.Name)
	return nil
}
