package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/txtemplate/domain/transaction"
	"github.com/kaspanet/txtemplate/domain/txscript"
)

func filter(conf *filterConfig, out io.Writer) error {
	tx, err := loadTransactionFile(conf.Transaction)
	if err != nil {
		return err
	}
	template, err := txscript.ParseTemplate(conf.Template)
	if err != nil {
		return err
	}

	criteria := transaction.NewMatchCriteria().SetScriptTemplate(template)
	if conf.Value != nil {
		criteria.SetValue(*conf.Value)
	}
	if conf.MinValue != nil {
		criteria.SetMinValue(*conf.MinValue)
	}
	if conf.MaxValue != nil {
		criteria.SetMaxValue(*conf.MaxValue)
	}

	var matching []int
	switch {
	case conf.Outputs:
		matching = tx.MatchOutputs(criteria)
	case conf.Concurrent:
		matching = tx.MatchInputsConcurrently(criteria)
	default:
		matching = tx.MatchInputs(criteria)
	}

	kind := "inputs"
	if conf.Outputs {
		kind = "outputs"
	}
	fmt.Fprintf(out, "Matching %s: %v\n", kind, matching)
	return nil
}
