package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs the start of functionName at debug level
// and returns a function that logs its end together with the elapsed time.
// When the logger does not admit debug messages the returned function does
// nothing. Typical use is `defer logger.LogAndMeasureExecutionTime(log, "name")()`.
func LogAndMeasureExecutionTime(subsystemLogger *Logger, functionName string) (onEnd func()) {
	if subsystemLogger.Level() > LevelDebug {
		return func() {}
	}
	start := time.Now()
	subsystemLogger.Debugf("%s start", functionName)
	return func() {
		subsystemLogger.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
