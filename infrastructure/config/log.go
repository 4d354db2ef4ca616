package config

import (
	"os"
	"path/filepath"

	"github.com/kaspanet/txtemplate/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "scriptmatch.log"
	defaultErrLogFile  = "scriptmatch_err.log"
)

// LogFlags configures the logging backend.
type LogFlags struct {
	LogLevel string `long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir   string `long:"logdir" description:"Directory to log output to, in addition to stderr"`
}

// Validate checks the log level specification against the registered
// subsystems without applying it.
func (logFlags *LogFlags) Validate() error {
	level := logFlags.LogLevel
	if level == "" {
		level = defaultLogLevel
	}
	if _, ok := logger.LevelFromString(level); ok {
		return nil
	}
	backup := make(map[string]logger.Level)
	for _, subsystem := range logger.SupportedSubsystems() {
		log, _ := logger.Get(subsystem)
		backup[subsystem] = log.Level()
	}
	defer func() {
		for subsystem, level := range backup {
			log, _ := logger.Get(subsystem)
			log.SetLevel(level)
		}
	}()
	return logger.ParseAndSetLogLevels(level)
}

// InitLogging applies the log levels and starts backend, writing to stderr
// and, if a log directory is configured, to rotating log files.
func (logFlags *LogFlags) InitLogging(backend *logger.Backend) error {
	err := logFlags.Validate()
	if err != nil {
		return err
	}
	level := logFlags.LogLevel
	if level == "" {
		level = defaultLogLevel
	}

	if logFlags.LogDir != "" {
		err = backend.AddLogFile(filepath.Join(logFlags.LogDir, defaultLogFilename), logger.LevelTrace)
		if err != nil {
			return err
		}
		err = backend.AddLogFile(filepath.Join(logFlags.LogDir, defaultErrLogFile), logger.LevelWarn)
		if err != nil {
			return err
		}
	}
	err = backend.AddLogWriter(os.Stderr, logger.LevelTrace)
	if err != nil {
		return err
	}
	err = backend.Run()
	if err != nil {
		return errors.Wrap(err, "failed to start the logger")
	}
	return logger.ParseAndSetLogLevels(level)
}
