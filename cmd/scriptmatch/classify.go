package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/templatelibrary"
)

func classify(conf *classifyConfig, out io.Writer) error {
	script, err := conf.parse()
	if err != nil {
		return err
	}

	library := templatelibrary.Standard()
	if conf.LibraryFile != "" {
		fileLibrary, err := templatelibrary.LoadFile(conf.LibraryFile)
		if err != nil {
			return err
		}
		err = library.Merge(fileLibrary)
		if err != nil {
			return err
		}
	}
	if conf.DataDir != "" {
		storeLibrary, err := loadStoreLibrary(conf.DataDir)
		if err != nil {
			return err
		}
		err = library.Merge(storeLibrary)
		if err != nil {
			return err
		}
	}

	name, captures, ok := library.Classify(script)
	if !ok {
		fmt.Fprintln(out, "nonstandard")
		return nil
	}
	fmt.Fprintln(out, name)
	writeCaptures(out, captures)
	return nil
}

func loadStoreLibrary(dataDir string) (*templatelibrary.Library, error) {
	store, teardown, err := openStore(dataDir)
	if err != nil {
		return nil, err
	}
	defer teardown()

	return store.Library()
}
