package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mutagen-io/prompter/pkg/platform/terminal"
)

// Warning prints a warning message to standard error.
func Warning(message string) {
	fmt.Fprintln(color.Error, color.YellowString("Warning:"), terminal.NeutralizeControlCharacters(message))
}

// Error prints an error message to standard error. Error messages may embed
// text from input or configuration, so control characters are neutralized.
func Error(err error) {
	fmt.Fprintln(color.Error, color.RedString("Error:"), terminal.NeutralizeControlCharacters(err.Error()))
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
