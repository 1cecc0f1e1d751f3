package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if stdin and stdout are both terminals and /dev/tty
// can be opened, which interactive prompts and the progress view require.
func IsTTY() bool {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return false
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// IsStdoutTTY reports whether stdout is a terminal, deciding styled output.
func IsStdoutTTY() bool {
	return isTerminal(os.Stdout)
}
