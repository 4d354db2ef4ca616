package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

var stdinReader = bufio.NewReader(os.Stdin)

// readSecret prompts for a secret. On a terminal the input is not echoed;
// otherwise one line is read from stdin.
func readSecret(prompt string) (string, error) {
	stdin := int(syscall.Stdin)
	if !term.IsTerminal(stdin) {
		line, err := stdinReader.ReadString('\n')
		if err != nil && line == "" {
			return "", errors.Wrap(err, "failed to read from stdin")
		}
		return strings.TrimSpace(line), nil
	}

	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Restore the terminal in the event of an interrupt.
	interrupt := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(interrupt, os.Interrupt)
	spawn("readSecret-restoreTerminal", func() {
		select {
		case <-interrupt:
			_ = term.Restore(stdin, initialTermState)
			os.Exit(1)
		case <-done:
		}
	})
	defer func() {
		signal.Stop(interrupt)
		close(done)
	}()

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return strings.TrimSpace(string(secret)), nil
}
