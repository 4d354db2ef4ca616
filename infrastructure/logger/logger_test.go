package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type bufferCloser struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferCloser) Close() error {
	b.Lock()
	defer b.Unlock()
	b.closed = true
	return nil
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in    string
		level Level
		ok    bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{" Warn ", LevelWarn, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.level || ok != test.ok {
			t.Errorf("LevelFromString(%q): want (%s, %t), got (%s, %t)",
				test.in, test.level, test.ok, level, ok)
		}
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("crt")
	if err != nil || level != LevelCritical {
		t.Fatalf("ParseLevel(crt): want %s, got %s, %v", LevelCritical, level, err)
	}
	_, err = ParseLevel("loud")
	if err == nil || !strings.Contains(err.Error(), strings.Join(SupportedLevels(), ", ")) {
		t.Fatalf("ParseLevel(loud): want an error listing the levels, got %v", err)
	}
	for _, name := range SupportedLevels() {
		level, ok := LevelFromString(name)
		if !ok {
			t.Errorf("supported level %q does not parse", name)
		}
		if back, _ := LevelFromString(level.String()); back != level {
			t.Errorf("tag %s of level %q parses to %s", level, name, back)
		}
	}
}

func TestLogAndMeasureExecutionTime(t *testing.T) {
	backend := NewBackendWithFlags(0)
	output := &bufferCloser{}
	if err := backend.AddLogWriter(output, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}
	log := backend.Logger("MEAS")

	LogAndMeasureExecutionTime(log, "quiet")()
	log.SetLevel(LevelDebug)
	LogAndMeasureExecutionTime(log, "loud")()
	backend.Close()

	text := output.String()
	if strings.Contains(text, "quiet") {
		t.Errorf("timing logged below the logger level: %q", text)
	}
	if !strings.Contains(text, "loud start") || !strings.Contains(text, "loud end. Took: ") {
		t.Errorf("timing lines missing: %q", text)
	}
}

func TestBackendFiltersByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	warnings := &bufferCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.AddLogWriter(warnings, LevelWarn); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}
	if err := backend.AddLogWriter(&bufferCloser{}, LevelInfo); err == nil {
		t.Fatalf("AddLogWriter unexpectedly succeeded on a running backend")
	}

	log := backend.Logger("TEST")
	log.Infof("dropped while off")
	log.SetLevel(LevelDebug)
	log.Tracef("below level")
	log.Debugf("debug %d", 1)
	log.Warnf("warn %d", 2)
	backend.Close()

	if !all.closed || !warnings.closed {
		t.Fatalf("Close did not close every writer")
	}
	allOutput := all.String()
	if strings.Contains(allOutput, "dropped while off") || strings.Contains(allOutput, "below level") {
		t.Errorf("filtered messages were written: %q", allOutput)
	}
	if !strings.Contains(allOutput, "[DBG] TEST: debug 1") || !strings.Contains(allOutput, "[WRN] TEST: warn 2") {
		t.Errorf("expected messages missing: %q", allOutput)
	}
	if strings.Contains(warnings.String(), "debug 1") || !strings.Contains(warnings.String(), "warn 2") {
		t.Errorf("warn writer got wrong messages: %q", warnings.String())
	}
}

func TestLogClosureIsLazy(t *testing.T) {
	called := false
	closure := NewLogClosure(func() string {
		called = true
		return "expensive"
	})
	log := NewBackend().Logger("LAZY")
	log.SetLevel(LevelInfo)
	log.Tracef("%s", closure)
	if called {
		t.Fatalf("closure evaluated for a filtered level")
	}
	if closure.String() != "expensive" {
		t.Fatalf("unexpected closure value")
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	log := RegisterSubSystem("PSLL")
	if err := ParseAndSetLogLevels("PSLL=debug"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %s", err)
	}
	if log.Level() != LevelDebug {
		t.Fatalf("want level %s, got %s", LevelDebug, log.Level())
	}
	if err := ParseAndSetLogLevels("NOPE=debug"); err == nil {
		t.Fatalf("unknown subsystem accepted")
	}
	if err := ParseAndSetLogLevels("PSLL=loud"); err == nil {
		t.Fatalf("unknown level accepted")
	}
	if err := ParseAndSetLogLevels("bogus"); err == nil {
		t.Fatalf("unknown global level accepted")
	}
}
