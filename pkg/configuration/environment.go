package configuration

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// environmentVariables are the environment variables that affect prompter
// configuration.
var environmentVariables = []string{
	ErrorMessageEnvironmentVariable,
	EncodingEnvironmentVariable,
	ResponseModeEnvironmentVariable,
	LogLevelEnvironmentVariable,
}

// LoadEnvironment loads a "dotenv" environment variable file from disk and
// updates it to include prompter variables from the current process'
// environment (with the current process' environment taking precedence).
// Interpolation is enabled for the contents of the environment file. If the
// path is empty or the target file doesn't exist, then the result contains only
// the relevant variables from the current process' environment.
func LoadEnvironment(path string) (map[string]string, error) {
	// Load the environment file (if any).
	var environment map[string]string
	if path != "" {
		var err error
		environment, err = godotenv.Read(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "unable to load environment file (%s)", path)
		}
	}

	// If the environment wasn't allocated, then do so now.
	if environment == nil {
		environment = make(map[string]string, len(environmentVariables))
	}

	// Add variables from the OS. Empty values are treated as unset, matching
	// ApplyEnvironment, so they don't mask values from the environment file.
	for _, key := range environmentVariables {
		if value := os.Getenv(key); value != "" {
			environment[key] = value
		}
	}

	// Success.
	return environment, nil
}
