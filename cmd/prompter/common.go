package main

import (
	"io"
	"os"

	"github.com/mutagen-io/prompter/cmd"
	"github.com/mutagen-io/prompter/pkg/configuration"
	"github.com/mutagen-io/prompter/pkg/prompting"
)

// loadConfiguration computes the effective configuration. Command line flags
// take precedence over the environment (including any dotenv file), which takes
// precedence over the YAML configuration file.
func loadConfiguration() (*configuration.Configuration, error) {
	// Determine the configuration file path.
	path := rootConfiguration.configurationFile
	if path == "" {
		var err error
		if path, err = configuration.ConfigurationPath(); err != nil {
			return nil, err
		}
	}

	// Load the configuration file.
	result, err := configuration.LoadConfiguration(path)
	if err != nil {
		return nil, err
	}

	// Apply environment overrides.
	environment, err := configuration.LoadEnvironment(rootConfiguration.environmentFile)
	if err != nil {
		return nil, err
	}
	result.ApplyEnvironment(environment)

	// Apply command line overrides.
	if rootConfiguration.errorMessage != "" {
		result.ErrorMessage = rootConfiguration.errorMessage
	}
	if rootConfiguration.encoding != "" {
		result.Encoding = rootConfiguration.encoding
	}
	if rootConfiguration.logLevel != "" {
		result.LogLevel = rootConfiguration.logLevel
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}

// newPrompter creates a prompter that reads standard input and writes prompts
// to the specified output. If allowTerminal is true, the configured response
// mode isn't echo, and standard input is a terminal, then responses are read
// directly from the terminal using that response mode.
func newPrompter(settings *configuration.Configuration, output io.Writer, allowTerminal bool) (*prompting.Prompter, error) {
	// Extract settings. These have already been validated.
	level, err := settings.Level()
	if err != nil {
		return nil, err
	}
	textEncoding, err := settings.TextEncoding()
	if err != nil {
		return nil, err
	}
	mode, err := settings.Mode()
	if err != nil {
		return nil, err
	}

	// Create the prompter configuration.
	logger := cmd.NewLogger(level).Sublogger("prompting")
	prompterConfiguration := &prompting.Configuration{
		ErrorMessage: settings.ErrorMessage,
		Encoding:     textEncoding,
		Logger:       logger,
	}

	// Use the terminal if requested and possible.
	if allowTerminal && mode != prompting.ResponseModeEcho {
		if cmd.IsTerminal(os.Stdin) {
			logger.Debugf("reading responses from terminal in %s mode", mode)
			return prompting.NewCommandLinePrompter(output, mode, prompterConfiguration), nil
		}
		cmd.Warning("standard input is not a terminal, ignoring " + mode.String() + " response mode")
	}

	// Otherwise read from standard input as a stream.
	return prompting.NewPrompter(os.Stdin, output, prompterConfiguration), nil
}
