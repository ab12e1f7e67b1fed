package prompting

import (
	"math/big"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Parser converts a line of text into a value of type T. It must return a
// *ParseError (or an error wrapping one) if the text doesn't conform to the
// type's grammar. Parsers must be pure: they're invoked once per line read and
// may be invoked any number of times.
type Parser[T any] func(string) (T, error)

// parseFailure constructs a ParseError for the specified type and text. If the
// cause is a *strconv.NumError, then only its inner error is retained, since
// the NumError already duplicates the text.
func parseFailure(typeName, text string, cause error) error {
	var numError *strconv.NumError
	if errors.As(cause, &numError) {
		cause = numError.Err
	}
	return &ParseError{Type: typeName, Text: text, Err: cause}
}

// ParseString is the identity parser. It accepts every line, including the
// empty line.
func ParseString(text string) (string, error) {
	return text, nil
}

// ParseInt8 parses a base-10 signed 8-bit integer.
func ParseInt8(text string) (int8, error) {
	value, err := strconv.ParseInt(text, 10, 8)
	if err != nil {
		return 0, parseFailure("int8", text, err)
	}
	return int8(value), nil
}

// ParseInt16 parses a base-10 signed 16-bit integer.
func ParseInt16(text string) (int16, error) {
	value, err := strconv.ParseInt(text, 10, 16)
	if err != nil {
		return 0, parseFailure("int16", text, err)
	}
	return int16(value), nil
}

// ParseInt32 parses a base-10 signed 32-bit integer.
func ParseInt32(text string) (int32, error) {
	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, parseFailure("int32", text, err)
	}
	return int32(value), nil
}

// ParseInt64 parses a base-10 signed 64-bit integer.
func ParseInt64(text string) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, parseFailure("int64", text, err)
	}
	return value, nil
}

// ParseInt parses a base-10 signed integer of the platform's int width.
func ParseInt(text string) (int, error) {
	value, err := strconv.ParseInt(text, 10, strconv.IntSize)
	if err != nil {
		return 0, parseFailure("int", text, err)
	}
	return int(value), nil
}

// decimalLiteralPattern matches decimal and exponential literals: an optional
// sign, a significand with at least one digit and an optional fractional part,
// and an optional exponent. It excludes the hexadecimal, infinity, and NaN
// forms that strconv.ParseFloat also accepts.
var decimalLiteralPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// parseFloat parses a floating point value of the specified bit size.
func parseFloat(typeName, text string, bitSize int) (float64, error) {
	if !decimalLiteralPattern.MatchString(text) {
		return 0, parseFailure(typeName, text, strconv.ErrSyntax)
	}
	value, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return 0, parseFailure(typeName, text, err)
	}
	return value, nil
}

// ParseFloat32 parses a 32-bit floating point value in decimal or exponential
// notation. Values too large in magnitude to be represented are rejected
// rather than converted to an infinity.
func ParseFloat32(text string) (float32, error) {
	value, err := parseFloat("float32", text, 32)
	return float32(value), err
}

// ParseFloat64 parses a 64-bit floating point value in decimal or exponential
// notation. Values too large in magnitude to be represented are rejected
// rather than converted to an infinity.
func ParseFloat64(text string) (float64, error) {
	return parseFloat("float64", text, 64)
}

// ParseBigInt parses an arbitrary-precision base-10 integer with an optional
// leading sign.
func ParseBigInt(text string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, parseFailure("bigint", text, strconv.ErrSyntax)
	}
	return value, nil
}

// ParseBigDecimal parses an arbitrary-precision decimal value, such as
// "-12.50" or "6.02e23". The result retains the scale of the literal, so
// "-12.50" has two fractional digits. Exponents are stored unexpanded and are
// limited only to the 32-bit range.
func ParseBigDecimal(text string) (decimal.Decimal, error) {
	if !decimalLiteralPattern.MatchString(text) {
		return decimal.Zero, parseFailure("bigdecimal", text, strconv.ErrSyntax)
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, parseFailure("bigdecimal", text, err)
	}
	return value, nil
}
