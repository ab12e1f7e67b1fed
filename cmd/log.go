package cmd

import (
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/mutagen-io/prompter/pkg/logging"
)

func init() {
	// Silence the default logger. Our own logging goes through loggers created
	// by NewLogger.
	log.SetOutput(io.Discard)
}

// NewLogger creates a root logger for command line use. It writes to standard
// error (through the color package so that colorized warnings and errors render
// correctly on all platforms).
func NewLogger(level logging.Level) *logging.Logger {
	return logging.NewLogger(level, color.Error)
}
