package templatelibrary

import (
	"github.com/kaspanet/txtemplate/infrastructure/logger"
)

var log = logger.RegisterSubSystem("TLIB")
