package prompting

import (
	"math/big"
	"os"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// standardOnce guards creation of standard.
	standardOnce sync.Once
	// standard is the process-wide prompter on standard input and output.
	standard *Prompter
)

// Standard returns the process-wide prompter, which reads from standard input
// and writes to standard output. It's created on first use. Like any Prompter,
// it must not be used by multiple goroutines at once, and nothing else should
// read standard input while it's in use, since it buffers its input.
func Standard() *Prompter {
	standardOnce.Do(func() {
		standard = NewPrompter(os.Stdin, os.Stdout, nil)
	})
	return standard
}

// SetErrorMessage sets the error message of the process-wide prompter.
func SetErrorMessage(message string) {
	Standard().SetErrorMessage(message)
}

// PromptForString invokes PromptForString on the process-wide prompter.
func PromptForString(prompt string) (string, error) {
	return Standard().PromptForString(prompt)
}

// PromptForInt8 invokes PromptForInt8 on the process-wide prompter.
func PromptForInt8(prompt string) (int8, error) {
	return Standard().PromptForInt8(prompt)
}

// PromptForInt16 invokes PromptForInt16 on the process-wide prompter.
func PromptForInt16(prompt string) (int16, error) {
	return Standard().PromptForInt16(prompt)
}

// PromptForInt32 invokes PromptForInt32 on the process-wide prompter.
func PromptForInt32(prompt string) (int32, error) {
	return Standard().PromptForInt32(prompt)
}

// PromptForInt64 invokes PromptForInt64 on the process-wide prompter.
func PromptForInt64(prompt string) (int64, error) {
	return Standard().PromptForInt64(prompt)
}

// PromptForInt invokes PromptForInt on the process-wide prompter.
func PromptForInt(prompt string) (int, error) {
	return Standard().PromptForInt(prompt)
}

// PromptForFloat32 invokes PromptForFloat32 on the process-wide prompter.
func PromptForFloat32(prompt string) (float32, error) {
	return Standard().PromptForFloat32(prompt)
}

// PromptForFloat64 invokes PromptForFloat64 on the process-wide prompter.
func PromptForFloat64(prompt string) (float64, error) {
	return Standard().PromptForFloat64(prompt)
}

// PromptForBigInt invokes PromptForBigInt on the process-wide prompter.
func PromptForBigInt(prompt string) (*big.Int, error) {
	return Standard().PromptForBigInt(prompt)
}

// PromptForBigDecimal invokes PromptForBigDecimal on the process-wide
// prompter.
func PromptForBigDecimal(prompt string) (decimal.Decimal, error) {
	return Standard().PromptForBigDecimal(prompt)
}
