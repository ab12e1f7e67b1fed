package prompting

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mutagen-io/gopass"
)

// TerminalSource is a LineSource that reads responses directly from the
// controlling terminal using the configured response mode. It's intended for
// interactive use only: standard input must be a terminal.
type TerminalSource struct {
	// Mode is the response mode used when reading.
	Mode ResponseMode
}

// ReadLine implements LineSource.ReadLine.
func (s *TerminalSource) ReadLine() (string, error) {
	// Figure out which getter to use.
	var getter func() ([]byte, error)
	if s.Mode == ResponseModeEcho {
		getter = gopass.GetPasswdEchoed
	} else if s.Mode == ResponseModeMasked {
		getter = gopass.GetPasswdMasked
	} else {
		getter = gopass.GetPasswd
	}

	// Get the result.
	result, err := getter()
	if err == io.EOF {
		return "", ErrEndOfInput
	} else if err != nil {
		return "", errors.Wrap(err, "unable to read from terminal")
	}

	// Success.
	return string(result), nil
}

// NewCommandLinePrompter creates a prompter that reads responses from the
// controlling terminal using the specified response mode and writes prompts to
// the specified output.
func NewCommandLinePrompter(output io.Writer, mode ResponseMode, configuration *Configuration) *Prompter {
	return NewPrompterWithSource(&TerminalSource{Mode: mode}, output, configuration)
}
