package main

import (
	"github.com/kaspanet/txtemplate/infrastructure/logger"
	"github.com/kaspanet/txtemplate/util/panics"
)

var (
	log   = logger.RegisterSubSystem("SMCL")
	spawn = panics.GoroutineWrapperFunc(log)
)
