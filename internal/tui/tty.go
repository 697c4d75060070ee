package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether both stdin and stdout are terminals
func IsTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// interactiveDisabled is set in tests and CI to keep prompts from blocking
func interactiveDisabled() bool {
	return os.Getenv("SEEDREPO_NO_INTERACTIVE") != ""
}
