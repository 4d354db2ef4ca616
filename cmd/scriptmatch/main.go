package main

import (
	"os"

	"github.com/kaspanet/txtemplate/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	subCmd, cfg, subConfig := parseCommandLine()

	err := cfg.InitLogging(logger.BackendLog)
	if err != nil {
		printErrorAndExit(err)
	}
	defer logger.BackendLog.Close()
	log.Debugf("Running %s", subCmd)

	out := os.Stdout
	switch subCmd {
	case matchSubCmd:
		err = match(subConfig.(*matchConfig), out)
	case finalizeSubCmd:
		err = finalize(subConfig.(*finalizeConfig), out)
	case classifySubCmd:
		err = classify(subConfig.(*classifyConfig), out)
	case filterSubCmd:
		err = filter(subConfig.(*filterConfig), out)
	case genKeySubCmd:
		err = genKey(subConfig.(*genKeyConfig), out)
	case ecdhSubCmd:
		err = ecdh(subConfig.(*ecdhConfig), out)
	case librarySubCmd + " " + libraryAddSubCmd:
		err = libraryAdd(subConfig.(*libraryAddConfig), out)
	case librarySubCmd + " " + libraryListSubCmd:
		err = libraryList(subConfig.(*libraryListConfig), out)
	case librarySubCmd + " " + libraryRemoveSubCmd:
		err = libraryRemove(subConfig.(*libraryRemoveConfig), out)
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		logger.BackendLog.Close()
		printErrorAndExit(err)
	}
}
