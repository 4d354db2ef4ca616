package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/txtemplate/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	matchSubCmd    = "match"
	finalizeSubCmd = "finalize"
	classifySubCmd = "classify"
	filterSubCmd   = "filter"
	genKeySubCmd   = "genkey"
	ecdhSubCmd     = "ecdh"
	librarySubCmd  = "library"

	libraryAddSubCmd    = "add"
	libraryListSubCmd   = "list"
	libraryRemoveSubCmd = "remove"
)

type configFlags struct {
	config.NetworkFlags
	config.LogFlags
}

type ScriptFlags struct {
	Script    string `long:"script" short:"s" description:"The script in assembly notation"`
	ScriptHex string `long:"script-hex" description:"The script in serialized form (encoded in hex)"`
}

type matchConfig struct {
	ScriptFlags
	Template string `long:"template" short:"t" description:"The template in assembly notation" required:"true"`
}

type finalizeConfig struct {
	Template string   `long:"template" short:"t" description:"The template in assembly notation" required:"true"`
	Values   []string `long:"value" short:"v" description:"A substitution value (encoded in hex), given once per wildcard in order"`
}

type classifyConfig struct {
	ScriptFlags
	LibraryFile string `long:"library" short:"l" description:"A YAML template library to classify against, after the standard templates"`
	DataDir     string `long:"datadir" short:"d" description:"A template store to classify against, after the library file"`
}

type filterConfig struct {
	Transaction string  `long:"transaction" short:"x" description:"The YAML transaction file" required:"true"`
	Template    string  `long:"template" short:"t" description:"The template in assembly notation" required:"true"`
	Value       *uint64 `long:"amount" description:"Only match entries of exactly this value"`
	MinValue    *uint64 `long:"min-amount" description:"Only match entries of at least this value"`
	MaxValue    *uint64 `long:"max-amount" description:"Only match entries of at most this value"`
	Outputs     bool    `long:"outputs" description:"Match the outputs instead of the inputs"`
	Concurrent  bool    `long:"concurrent" description:"Evaluate the inputs concurrently"`
}

type genKeyConfig struct {
	ImportMnemonic bool `long:"import" short:"i" description:"Derive the key from a mnemonic read from the terminal instead of a new one"`
	config.NetworkFlags
}

type ecdhConfig struct {
	PrivateKey string `long:"private-key" short:"k" description:"The private key in wallet import format; prompted for if omitted"`
	PublicKey  string `long:"public-key" short:"p" description:"The peer public key (encoded in hex)" required:"true"`
	config.NetworkFlags
}

type libraryAddConfig struct {
	DataDir  string `long:"datadir" short:"d" description:"Directory of the template store" required:"true"`
	Name     string `long:"name" short:"n" description:"The template name" required:"true"`
	Template string `long:"template" short:"t" description:"The template in assembly notation" required:"true"`
}

type libraryListConfig struct {
	DataDir string `long:"datadir" short:"d" description:"Directory of the template store" required:"true"`
}

type libraryRemoveConfig struct {
	DataDir string `long:"datadir" short:"d" description:"Directory of the template store" required:"true"`
	Name    string `long:"name" short:"n" description:"The template name" required:"true"`
}

func parseCommandLine() (subCommand string, cfg *configFlags, subConfig interface{}) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	matchConf := &matchConfig{}
	parser.AddCommand(matchSubCmd, "Matches a script against a template",
		"Matches a script against a template and prints the captured data", matchConf)

	finalizeConf := &finalizeConfig{}
	parser.AddCommand(finalizeSubCmd, "Fills the wildcards of a template",
		"Fills the wildcards of a template and prints the resulting script", finalizeConf)

	classifyConf := &classifyConfig{}
	parser.AddCommand(classifySubCmd, "Finds the template a script matches",
		"Finds the first standard or library template a script matches", classifyConf)

	filterConf := &filterConfig{}
	parser.AddCommand(filterSubCmd, "Finds the inputs or outputs of a transaction matching a template",
		"Finds the inputs or outputs of a transaction matching a template and value bounds", filterConf)

	genKeyConf := &genKeyConfig{}
	parser.AddCommand(genKeySubCmd, "Generates a key",
		"Generates a mnemonic and prints the derived private key, public key and public key hash", genKeyConf)

	ecdhConf := &ecdhConfig{}
	parser.AddCommand(ecdhSubCmd, "Derives a shared key",
		"Derives the ECDH shared key of a private key and a peer public key", ecdhConf)

	libraryCommand, err := parser.AddCommand(librarySubCmd, "Manages the template store",
		"Adds, lists and removes templates of the template store", &struct{}{})
	if err != nil {
		printErrorAndExit(err)
	}
	libraryAddConf := &libraryAddConfig{}
	libraryCommand.AddCommand(libraryAddSubCmd, "Adds a template",
		"Adds a template to the store, replacing a template of the same name", libraryAddConf)
	libraryListConf := &libraryListConfig{}
	libraryCommand.AddCommand(libraryListSubCmd, "Lists the templates",
		"Lists the stored templates in name order", libraryListConf)
	libraryRemoveConf := &libraryRemoveConfig{}
	libraryCommand.AddCommand(libraryRemoveSubCmd, "Removes a template",
		"Removes a template from the store", libraryRemoveConf)

	_, err = parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil, nil
	}

	active := parser.Command.Active
	switch active.Name {
	case matchSubCmd:
		return matchSubCmd, cfg, matchConf
	case finalizeSubCmd:
		return finalizeSubCmd, cfg, finalizeConf
	case classifySubCmd:
		return classifySubCmd, cfg, classifyConf
	case filterSubCmd:
		return filterSubCmd, cfg, filterConf
	case genKeySubCmd:
		config.CombineNetworkFlags(&genKeyConf.NetworkFlags, &cfg.NetworkFlags)
		err := genKeyConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		return genKeySubCmd, cfg, genKeyConf
	case ecdhSubCmd:
		config.CombineNetworkFlags(&ecdhConf.NetworkFlags, &cfg.NetworkFlags)
		err := ecdhConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		return ecdhSubCmd, cfg, ecdhConf
	case librarySubCmd:
		if active.Active == nil {
			printErrorAndExit(errors.New("the library command requires a sub-command"))
		}
		name := librarySubCmd + " " + active.Active.Name
		switch active.Active.Name {
		case libraryAddSubCmd:
			return name, cfg, libraryAddConf
		case libraryListSubCmd:
			return name, cfg, libraryListConf
		case libraryRemoveSubCmd:
			return name, cfg, libraryRemoveConf
		}
	}
	return active.Name, cfg, nil
}
