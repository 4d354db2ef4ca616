package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the minimum severity a logger or a backend writer admits.
type Level uint32

// Levels from most to least verbose. LevelOff admits nothing.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelNames holds, per level, the tag written into log lines followed by
// the long name accepted on the command line.
var levelNames = [...][2]string{
	LevelTrace:    {"TRC", "trace"},
	LevelDebug:    {"DBG", "debug"},
	LevelInfo:     {"INF", "info"},
	LevelWarn:     {"WRN", "warn"},
	LevelError:    {"ERR", "error"},
	LevelCritical: {"CRT", "critical"},
	LevelOff:      {"OFF", "off"},
}

// LevelFromString accepts either the long name or the tag of a level, in
// any case and with surrounding spaces. Unknown input yields LevelInfo and
// false.
func LevelFromString(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, names := range levelNames {
		if s == strings.ToLower(names[0]) || s == names[1] {
			return Level(level), true
		}
	}
	return LevelInfo, false
}

// ParseLevel is LevelFromString with an error naming the accepted levels.
func ParseLevel(s string) (Level, error) {
	level, ok := LevelFromString(s)
	if !ok {
		return LevelInfo, errors.Errorf("invalid log level %q -- supported levels %s",
			s, strings.Join(SupportedLevels(), ", "))
	}
	return level, nil
}

// SupportedLevels returns the long level names, most verbose first.
func SupportedLevels() []string {
	names := make([]string, len(levelNames))
	for level, levelName := range levelNames {
		names[level] = levelName[1]
	}
	return names
}

// String returns the tag of the level as written into log lines.
func (l Level) String() string {
	if l >= LevelOff {
		return levelNames[LevelOff][0]
	}
	return levelNames[l][0]
}
