package cmd

import (
	"os"

	"github.com/pkg/errors"

	isatty "github.com/mattn/go-isatty"
)

// IsTerminal returns whether or not the specified file is an interactive
// terminal (including Cygwin/MSYS2 terminals on Windows).
func IsTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// relaunchExitCode computes the exit code to use after running a relaunched
// copy of the current process, given the result of running it and its process
// state. It returns an error if the process never started.
func relaunchExitCode(runErr error, state *os.ProcessState) (int, error) {
	if state != nil {
		return state.ExitCode(), nil
	}
	if runErr == nil {
		runErr = errors.New("no process state available")
	}
	return 0, errors.Wrap(runErr, "unable to run winpty")
}
