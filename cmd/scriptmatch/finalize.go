package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/txscript"
)

func finalize(conf *finalizeConfig, out io.Writer) error {
	template, err := txscript.ParseTemplate(conf.Template)
	if err != nil {
		return err
	}
	values, err := parseHexValues(conf.Values)
	if err != nil {
		return err
	}

	script, err := txscript.Finalize(template, values)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Script: %s\n", script)
	fmt.Fprintf(out, "Serialized: %x\n", script.Bytes())
	return nil
}
