// Package terminal provides utilities for printing untrusted text to terminals.
package terminal

import (
	"strings"
)

// controlCharacterNeutralizer is a string replacer that neutralizes terminal
// control characters.
var controlCharacterNeutralizer = strings.NewReplacer(
	"\x1b", "^[",
	"\r", "\\r",
	"\b", "\\b",
	"\a", "\\a",
)

// NeutralizeControlCharacters returns a copy of a string with any terminal
// control characters neutralized. It should be used when printing text that
// may originate from input, configuration files, or the environment.
func NeutralizeControlCharacters(value string) string {
	return controlCharacterNeutralizer.Replace(value)
}
