// Package configuration provides loading and validation of prompter settings
// from YAML configuration files and the environment.
package configuration

import (
	"os"

	"github.com/pkg/errors"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/mutagen-io/prompter/pkg/encoding"
	"github.com/mutagen-io/prompter/pkg/logging"
	"github.com/mutagen-io/prompter/pkg/prompting"
)

const (
	// ErrorMessageEnvironmentVariable is the environment variable that
	// overrides the error message.
	ErrorMessageEnvironmentVariable = "PROMPTER_ERROR_MESSAGE"
	// EncodingEnvironmentVariable is the environment variable that overrides
	// the input text encoding.
	EncodingEnvironmentVariable = "PROMPTER_ENCODING"
	// ResponseModeEnvironmentVariable is the environment variable that
	// overrides the terminal response mode.
	ResponseModeEnvironmentVariable = "PROMPTER_RESPONSE_MODE"
	// LogLevelEnvironmentVariable is the environment variable that overrides
	// the log level.
	LogLevelEnvironmentVariable = "PROMPTER_LOG_LEVEL"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = logging.LevelWarn

// Configuration is the YAML configuration object type. Empty fields indicate
// that the default value should be used.
type Configuration struct {
	// ErrorMessage is the message displayed after invalid input.
	ErrorMessage string `yaml:"errorMessage"`
	// Encoding is the WHATWG name (or label) of the input text encoding, e.g.
	// "utf-8" or "iso-8859-1".
	Encoding string `yaml:"encoding"`
	// ResponseMode is the name of the terminal response mode.
	ResponseMode string `yaml:"responseMode"`
	// LogLevel is the name of the log level.
	LogLevel string `yaml:"logLevel"`
}

// LoadConfiguration attempts to load a YAML-based configuration file from the
// specified path. If the file doesn't exist, then an empty configuration is
// returned.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load. A missing file is equivalent to an empty one.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrapf(err, "unable to load configuration file (%s)", path)
	}

	// Success.
	return result, nil
}

// ApplyEnvironment overrides configuration values with any non-empty values
// found in the specified environment.
func (c *Configuration) ApplyEnvironment(environment map[string]string) {
	if value := environment[ErrorMessageEnvironmentVariable]; value != "" {
		c.ErrorMessage = value
	}
	if value := environment[EncodingEnvironmentVariable]; value != "" {
		c.Encoding = value
	}
	if value := environment[ResponseModeEnvironmentVariable]; value != "" {
		c.ResponseMode = value
	}
	if value := environment[LogLevelEnvironmentVariable]; value != "" {
		c.LogLevel = value
	}
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	if _, err := c.TextEncoding(); err != nil {
		return err
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// TextEncoding returns the configured input text encoding. If no encoding is
// configured, it returns nil, indicating UTF-8 input. Encodings that don't
// represent line terminators as single bytes (i.e. UTF-16) are rejected.
func (c *Configuration) TextEncoding() (textencoding.Encoding, error) {
	// Handle the default case.
	if c.Encoding == "" {
		return nil, nil
	}

	// Look up the encoding.
	result, err := htmlindex.Get(c.Encoding)
	if err != nil {
		return nil, errors.Errorf("unknown encoding: %s", c.Encoding)
	}

	// Reject encodings that LineReader can't split.
	if name, _ := htmlindex.Name(result); name == "utf-16be" || name == "utf-16le" {
		return nil, errors.Errorf("unsupported encoding: %s", c.Encoding)
	}

	// Success.
	return result, nil
}

// Mode returns the configured terminal response mode, defaulting to
// prompting.ResponseModeEcho.
func (c *Configuration) Mode() (prompting.ResponseMode, error) {
	if c.ResponseMode == "" {
		return prompting.ResponseModeEcho, nil
	}
	return prompting.ParseResponseMode(c.ResponseMode)
}

// Level returns the configured log level, defaulting to DefaultLogLevel.
func (c *Configuration) Level() (logging.Level, error) {
	if c.LogLevel == "" {
		return DefaultLogLevel, nil
	}
	level, ok := logging.NameToLevel(c.LogLevel)
	if !ok {
		return logging.LevelDisabled, errors.Errorf("unknown log level: %s", c.LogLevel)
	}
	return level, nil
}
