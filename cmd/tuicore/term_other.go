//go:build !unix

package main

import (
	"os"

	"golang.org/x/term"
)

// terminalSize returns the size of the terminal on stdout.
func terminalSize() (width, height int, ok bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w == 0 || h == 0 {
		return 0, 0, false
	}
	return w, h, true
}

func isTerminalFd(fd int) bool {
	return term.IsTerminal(fd)
}
