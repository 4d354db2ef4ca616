package transaction

import (
	"github.com/kaspanet/txtemplate/infrastructure/logger"
	"github.com/kaspanet/txtemplate/util/panics"
)

var log = logger.RegisterSubSystem("TXFL")
var spawn = panics.GoroutineWrapperFunc(log)
