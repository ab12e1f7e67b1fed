package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mutagen-io/prompter/cmd"
	"github.com/mutagen-io/prompter/pkg/prompting"
)

// asker prompts for a value of a particular type and formats it for output.
type asker func(prompter *prompting.Prompter, prompt string, humanized bool) (string, error)

// askers maps type names to their askers.
var askers = map[string]asker{
	"string": func(p *prompting.Prompter, prompt string, _ bool) (string, error) {
		return p.PromptForString(prompt)
	},
	"int8": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForInt8(prompt)
		return formatInteger(int64(value), humanized), err
	},
	"int16": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForInt16(prompt)
		return formatInteger(int64(value), humanized), err
	},
	"int32": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForInt32(prompt)
		return formatInteger(int64(value), humanized), err
	},
	"int64": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForInt64(prompt)
		return formatInteger(value, humanized), err
	},
	"int": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForInt(prompt)
		return formatInteger(int64(value), humanized), err
	},
	"float32": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForFloat32(prompt)
		return formatFloat(float64(value), 32, humanized), err
	},
	"float64": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForFloat64(prompt)
		return formatFloat(value, 64, humanized), err
	},
	"bigint": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForBigInt(prompt)
		if err != nil {
			return "", err
		}
		return formatBigInt(value, humanized), nil
	},
	"bigdecimal": func(p *prompting.Prompter, prompt string, humanized bool) (string, error) {
		value, err := p.PromptForBigDecimal(prompt)
		if err != nil {
			return "", err
		}
		return formatBigDecimal(value, humanized), nil
	},
}

// askTypeNames is the ordered list of supported type names, used for help
// output and error messages.
var askTypeNames = []string{
	"string", "int8", "int16", "int32", "int64", "int",
	"float32", "float64", "bigint", "bigdecimal",
}

// formatInteger formats a fixed-width integer.
func formatInteger(value int64, humanized bool) string {
	if humanized {
		return humanize.Comma(value)
	}
	return strconv.FormatInt(value, 10)
}

// formatFloat formats a floating point value using the shortest representation
// that round-trips at the specified bit size. Humanized output groups that same
// representation.
func formatFloat(value float64, bitSize int, humanized bool) string {
	text := strconv.FormatFloat(value, 'g', -1, bitSize)
	if !humanized {
		return text
	}
	shortest, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return humanize.Commaf(shortest)
}

// formatBigInt formats an arbitrary-precision integer.
func formatBigInt(value *big.Int, humanized bool) string {
	if humanized {
		return humanize.BigComma(value)
	}
	return value.String()
}

// formatBigDecimal formats an arbitrary-precision decimal in plain notation,
// keeping the number of fractional digits that were entered. Humanized output
// groups the digits of the integer part.
func formatBigDecimal(value decimal.Decimal, humanized bool) string {
	// Compute the plain representation.
	text := value.String()
	if exponent := value.Exponent(); exponent < 0 {
		text = value.StringFixed(-exponent)
	}
	if !humanized {
		return text
	}

	// Separate the sign and fractional part.
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	integral, fractional := text, ""
	if index := strings.IndexByte(text, '.'); index >= 0 {
		integral, fractional = text[:index], text[index:]
	}

	// Group the integer digits.
	integer, ok := new(big.Int).SetString(integral, 10)
	if !ok {
		return sign + text
	}
	return sign + humanize.BigComma(integer) + fractional
}

// valueTypeFlag is a flag value that only accepts supported type names.
type valueTypeFlag string

// String implements pflag.Value.String.
func (f *valueTypeFlag) String() string {
	return string(*f)
}

// Set implements pflag.Value.Set.
func (f *valueTypeFlag) Set(value string) error {
	if _, ok := askers[value]; !ok {
		return errors.Errorf("unsupported type: %s (supported types: %s)",
			value, strings.Join(askTypeNames, ", "))
	}
	*f = valueTypeFlag(value)
	return nil
}

// Type implements pflag.Value.Type.
func (f *valueTypeFlag) Type() string {
	return "type"
}

// Ensure that valueTypeFlag implements pflag.Value.
var _ pflag.Value = (*valueTypeFlag)(nil)

// askMain is the entry point for the ask command.
func askMain(_ *cobra.Command, arguments []string) error {
	// Look up the asker. The type flag has already been validated.
	ask := askers[string(askConfiguration.valueType)]

	// Load configuration and apply command-specific overrides.
	settings, err := loadConfiguration()
	if err != nil {
		return err
	}
	if askConfiguration.responseMode != "" {
		settings.ResponseMode = askConfiguration.responseMode
		if err := settings.EnsureValid(); err != nil {
			return err
		}
	}

	// Create the prompter. Prompts and error messages go to standard error so
	// that only the value is printed to standard output.
	prompter, err := newPrompter(settings, os.Stderr, true)
	if err != nil {
		return err
	}

	// Prompt and print the result.
	value, err := ask(prompter, arguments[0], askConfiguration.humanize)
	if err != nil {
		return err
	}
	fmt.Println(value)

	// Success.
	return nil
}

// askCommand is the ask command.
var askCommand = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Prompt for a single typed value and print it",
	Long: `Prompt for a single value of the specified type, repeating the prompt until a
valid value is entered, and print the value to standard output. Prompts and
error messages are written to standard error.

Supported types: ` + strings.Join(askTypeNames, ", "),
	Args:         cobra.ExactArgs(1),
	Run:          cmd.Mainify(askMain),
	SilenceUsage: true,
}

// askConfiguration stores configuration for the ask command.
var askConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// valueType is the name of the type to prompt for.
	valueType valueTypeFlag
	// responseMode is the terminal response mode.
	responseMode string
	// humanize indicates whether or not numeric output should be grouped with
	// commas.
	humanize bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := askCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&askConfiguration.help, "help", "h", false, "Show help information")

	// Wire up prompting flags.
	askConfiguration.valueType = "string"
	flags.VarP(&askConfiguration.valueType, "type", "t", "Specify the value type")
	flags.StringVarP(&askConfiguration.responseMode, "response-mode", "m", "", "Specify the terminal response mode (echo|masked|secret)")
	flags.BoolVar(&askConfiguration.humanize, "humanize", false, "Group digits of numeric output with commas")
}
