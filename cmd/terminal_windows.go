package cmd

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"

	isatty "github.com/mattn/go-isatty"
)

// HandleTerminalCompatibility automatically restarts the current process inside
// a terminal compatibility emulator if necessary. It currently only handles the
// case of mintty consoles on Windows, which don't provide the console APIs that
// masked and secret response modes rely on, by relaunching the current command
// inside winpty.
func HandleTerminalCompatibility() {
	// If we're not running inside a mintty-based terminal, then there's nothing
	// that we need to do.
	if !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return
	}

	// Since we're running inside a mintty-based terminal, we need to relaunch
	// using winpty, so first attempt to locate it.
	winpty, err := exec.LookPath("winpty")
	if err != nil {
		Fatal(errors.New("running inside mintty terminal and unable to locate winpty"))
	}

	// Compute the path to the current executable.
	executable, err := os.Executable()
	if err != nil {
		Fatal(errors.Wrap(err, "running inside mintty terminal and unable to locate current executable"))
	}

	// Build the argument list for winpty.
	arguments := make([]string, 0, len(os.Args))
	arguments = append(arguments, executable)
	arguments = append(arguments, os.Args[1:]...)

	// Create the command that we'll run and wire up its streams.
	command := exec.Command(winpty, arguments...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	// Run the command and terminate with its exit code.
	exitCode, err := relaunchExitCode(command.Run(), command.ProcessState)
	if err != nil {
		Fatal(err)
	}
	os.Exit(exitCode)
}
