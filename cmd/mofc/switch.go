package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// switchMode is the value of an auto|on|off flag such as --color or --ui.
type switchMode uint8

const (
	switchAuto switchMode = iota
	switchOn
	switchOff
)

func parseSwitch(flag, value string) (switchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	}
	return switchAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// enabled resolves auto by asking whether w is a terminal.
func (m switchMode) enabled(w io.Writer) bool {
	if m == switchAuto {
		return isTerminal(w)
	}
	return m == switchOn
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
