package prompting

import (
	"bytes"
	"testing"
)

// TestNewCommandLinePrompter tests that command line prompters are wired to a
// terminal source with the requested response mode.
//
// Reading from the terminal itself isn't tested here, since it requires a
// controlling terminal that isn't available in parallel test environments. The
// line reading logic lives in gopass.
func TestNewCommandLinePrompter(t *testing.T) {
	// Create the prompter.
	prompter := NewCommandLinePrompter(&bytes.Buffer{}, ResponseModeMasked, &Configuration{ErrorMessage: "nope"})

	// Verify the source.
	source, ok := prompter.source.(*TerminalSource)
	if !ok {
		t.Fatalf("command line prompter has unexpected source type: %T", prompter.source)
	} else if source.Mode != ResponseModeMasked {
		t.Error("terminal source response mode does not match expected:", source.Mode, "!=", ResponseModeMasked)
	}

	// Verify the error message.
	if prompter.ErrorMessage() != "nope" {
		t.Error("error message does not match expected:", prompter.ErrorMessage())
	}
}
