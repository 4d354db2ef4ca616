package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/txscript"
)

func match(conf *matchConfig, out io.Writer) error {
	script, err := conf.parse()
	if err != nil {
		return err
	}
	template, err := txscript.ParseTemplate(conf.Template)
	if err != nil {
		return err
	}

	captures, err := txscript.Match(script, template)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Matched with %d captures\n", len(captures))
	writeCaptures(out, captures)
	return nil
}
