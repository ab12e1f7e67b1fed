package prompting

import (
	"github.com/pkg/errors"
)

// ResponseMode encodes how a prompt response should be displayed as it's typed
// at a terminal.
type ResponseMode uint8

const (
	// ResponseModeSecret indicates that a prompt response shouldn't be echoed.
	ResponseModeSecret ResponseMode = iota
	// ResponseModeMasked indicates that a prompt response should be masked.
	ResponseModeMasked
	// ResponseModeEcho indicates that a prompt response should be echoed.
	ResponseModeEcho
)

// ParseResponseMode converts the name of a response mode to a ResponseMode
// value.
func ParseResponseMode(name string) (ResponseMode, error) {
	switch name {
	case "secret":
		return ResponseModeSecret, nil
	case "masked":
		return ResponseModeMasked, nil
	case "echo":
		return ResponseModeEcho, nil
	default:
		return ResponseModeEcho, errors.Errorf("unknown response mode: %s", name)
	}
}

// String provides a human-readable representation of a response mode.
func (m ResponseMode) String() string {
	switch m {
	case ResponseModeSecret:
		return "secret"
	case ResponseModeMasked:
		return "masked"
	case ResponseModeEcho:
		return "echo"
	default:
		return "unknown"
	}
}
