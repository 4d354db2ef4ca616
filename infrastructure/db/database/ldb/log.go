package ldb

import (
	"github.com/kaspanet/txtemplate/infrastructure/logger"
)

var log = logger.RegisterSubSystem("LDB")
