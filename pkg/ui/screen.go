package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ClearScreen wipes the terminal between reports. A non-terminal stdout
// (pipes, CI) is left untouched, and log output is never affected.
func ClearScreen() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Print("\033[H\033[2J")
}

// QuietTerminal suppresses stdin echo while the monitor owns the screen and
// returns a restore function. It is a no-op when stdin is not a terminal.
func QuietTerminal() func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	restore, err := disableInputEcho(fd)
	if err != nil || restore == nil {
		return func() {}
	}
	return restore
}
