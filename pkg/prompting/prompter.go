package prompting

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"golang.org/x/text/encoding"

	"github.com/mutagen-io/prompter/pkg/logging"
)

// DefaultErrorMessage is the error message displayed after invalid input when
// no custom message is configured.
const DefaultErrorMessage = "Invalid value, please try again."

// Configuration encodes optional prompter settings. A nil configuration is
// equivalent to a zero-valued one.
type Configuration struct {
	// ErrorMessage is the message displayed after invalid input. If empty,
	// DefaultErrorMessage is used.
	ErrorMessage string
	// Encoding is the text encoding of the input stream. If nil, input is
	// treated as UTF-8. It has no effect on prompters created with
	// NewPrompterWithSource.
	Encoding encoding.Encoding
	// Logger is the logger to which prompting activity is reported. It may be
	// nil.
	Logger *logging.Logger
}

// Prompter pairs a line source with a retry-until-valid prompting loop. It
// never returns a value that failed to parse: invalid input causes the error
// message to be displayed and the prompt to be repeated, indefinitely, until
// either valid input is received or the input source is exhausted.
//
// Prompter performs no internal synchronization and must not be used by
// multiple goroutines at once.
type Prompter struct {
	// source is the line source.
	source LineSource
	// output is the sink for prompts and messages.
	output io.Writer
	// errorMessage is the message displayed after invalid input.
	errorMessage string
	// logger is the prompting logger.
	logger *logging.Logger
}

// NewPrompter creates a new prompter that reads lines from the specified input
// stream and writes prompts and error messages to the specified output. The
// input stream is not closed by the prompter and must outlive it.
func NewPrompter(input io.Reader, output io.Writer, configuration *Configuration) *Prompter {
	if configuration == nil {
		configuration = &Configuration{}
	}
	return NewPrompterWithSource(NewLineReader(input, configuration.Encoding), output, configuration)
}

// NewPrompterWithSource creates a new prompter that reads lines from the
// specified line source and writes prompts and error messages to the specified
// output.
func NewPrompterWithSource(source LineSource, output io.Writer, configuration *Configuration) *Prompter {
	// Handle a missing configuration.
	if configuration == nil {
		configuration = &Configuration{}
	}

	// Determine the error message.
	errorMessage := configuration.ErrorMessage
	if errorMessage == "" {
		errorMessage = DefaultErrorMessage
	}

	// Create the prompter.
	return &Prompter{
		source:       source,
		output:       output,
		errorMessage: errorMessage,
		logger:       configuration.Logger,
	}
}

// ErrorMessage returns the message displayed after invalid input.
func (p *Prompter) ErrorMessage() string {
	return p.errorMessage
}

// SetErrorMessage sets the message displayed after invalid input. It takes
// effect on the next invalid input. An empty message restores
// DefaultErrorMessage.
func (p *Prompter) SetErrorMessage(message string) {
	if message == "" {
		message = DefaultErrorMessage
	}
	p.errorMessage = message
}

// flusher is implemented by buffered outputs, such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// write writes text to the output and flushes it if the output is buffered.
func (p *Prompter) write(text string) error {
	if _, err := io.WriteString(p.output, text); err != nil {
		return err
	}
	if f, ok := p.output.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Message prints a message, followed by a newline, to the output.
func (p *Prompter) Message(message string) error {
	if err := p.write(message + "\n"); err != nil {
		return errors.Wrap(err, "unable to print message")
	}
	return nil
}

// Prompt prints a prompt, with no trailing newline, and returns the next line
// of input verbatim.
func (p *Prompter) Prompt(prompt string) (string, error) {
	return PromptFor(p, prompt, ParseString)
}

// PromptFor displays a prompt and reads lines until one is accepted by the
// specified parser, at which point the parsed value is returned. Each rejected
// line causes the prompter's error message to be printed before the prompt is
// displayed again. There is no limit on the number of attempts. If the input
// is exhausted, an error satisfying errors.Is(err, ErrEndOfInput) is returned.
// Any other input or output failure is returned as-is (wrapped with context)
// and is never retried.
func PromptFor[T any](p *Prompter, prompt string, parser Parser[T]) (T, error) {
	var zero T
	for {
		// Print the prompt.
		if err := p.write(prompt); err != nil {
			return zero, errors.Wrap(err, "unable to print prompt")
		}

		// Read the response.
		line, err := p.source.ReadLine()
		if err != nil {
			return zero, errors.Wrap(err, "unable to read response")
		}
		p.logger.Tracef("read %q", line)

		// Attempt to parse the response.
		value, err := parser(line)
		if err == nil {
			return value, nil
		}
		p.logger.Debug(err)

		// Report the failure and try again.
		if err := p.Message(p.errorMessage); err != nil {
			return zero, err
		}
	}
}

// PromptForString prompts for a line of freeform text. Every line, including
// the empty line, is accepted.
func (p *Prompter) PromptForString(prompt string) (string, error) {
	return PromptFor(p, prompt, ParseString)
}

// PromptForInt8 prompts until a valid 8-bit signed integer is entered.
func (p *Prompter) PromptForInt8(prompt string) (int8, error) {
	return PromptFor(p, prompt, ParseInt8)
}

// PromptForInt16 prompts until a valid 16-bit signed integer is entered.
func (p *Prompter) PromptForInt16(prompt string) (int16, error) {
	return PromptFor(p, prompt, ParseInt16)
}

// PromptForInt32 prompts until a valid 32-bit signed integer is entered.
func (p *Prompter) PromptForInt32(prompt string) (int32, error) {
	return PromptFor(p, prompt, ParseInt32)
}

// PromptForInt64 prompts until a valid 64-bit signed integer is entered.
func (p *Prompter) PromptForInt64(prompt string) (int64, error) {
	return PromptFor(p, prompt, ParseInt64)
}

// PromptForInt prompts until a valid int is entered.
func (p *Prompter) PromptForInt(prompt string) (int, error) {
	return PromptFor(p, prompt, ParseInt)
}

// PromptForFloat32 prompts until a valid 32-bit floating point value is
// entered.
func (p *Prompter) PromptForFloat32(prompt string) (float32, error) {
	return PromptFor(p, prompt, ParseFloat32)
}

// PromptForFloat64 prompts until a valid 64-bit floating point value is
// entered.
func (p *Prompter) PromptForFloat64(prompt string) (float64, error) {
	return PromptFor(p, prompt, ParseFloat64)
}

// PromptForBigInt prompts until a valid arbitrary-precision integer is entered.
func (p *Prompter) PromptForBigInt(prompt string) (*big.Int, error) {
	return PromptFor(p, prompt, ParseBigInt)
}

// PromptForBigDecimal prompts until a valid arbitrary-precision decimal value
// is entered.
func (p *Prompter) PromptForBigDecimal(prompt string) (decimal.Decimal, error) {
	return PromptFor(p, prompt, ParseBigDecimal)
}
