package prompting

import (
	"math"
	"strconv"
	"testing"

	"github.com/pkg/errors"
)

// TestParseIntegers tests fixed-width integer parsing, including range limits.
func TestParseIntegers(t *testing.T) {
	// Set up test cases. Each case records the expected value at each width,
	// or nil if the text should be rejected at that width.
	type result struct {
		value int64
	}
	testCases := []struct {
		text  string
		int8  *result
		int16 *result
		int32 *result
		int64 *result
	}{
		{"0", &result{0}, &result{0}, &result{0}, &result{0}},
		{"-7", &result{-7}, &result{-7}, &result{-7}, &result{-7}},
		{"+42", &result{42}, &result{42}, &result{42}, &result{42}},
		{"127", &result{127}, &result{127}, &result{127}, &result{127}},
		{"-128", &result{-128}, &result{-128}, &result{-128}, &result{-128}},
		{"200", nil, &result{200}, &result{200}, &result{200}},
		{"-32769", nil, nil, &result{-32769}, &result{-32769}},
		{"1000000", nil, nil, &result{1000000}, &result{1000000}},
		{"2147483648", nil, nil, nil, &result{2147483648}},
		{"9223372036854775807", nil, nil, nil, &result{math.MaxInt64}},
		{"9223372036854775808", nil, nil, nil, nil},
		{"", nil, nil, nil, nil},
		{"abc", nil, nil, nil, nil},
		{" 5", nil, nil, nil, nil},
		{"5 ", nil, nil, nil, nil},
		{"1_000", nil, nil, nil, nil},
		{"0x10", nil, nil, nil, nil},
		{"1.0", nil, nil, nil, nil},
		{"--1", nil, nil, nil, nil},
	}

	// check verifies a single parse result.
	check := func(width, text string, expected *result, value int64, err error) {
		if expected == nil {
			if err == nil {
				t.Errorf("%s parse of %q succeeded with %d", width, text, value)
			} else if !IsParseFailure(err) {
				t.Errorf("%s parse of %q failed with non-parse error: %v", width, text, err)
			}
		} else if err != nil {
			t.Errorf("%s parse of %q failed: %v", width, text, err)
		} else if value != expected.value {
			t.Errorf("%s parse of %q does not match expected: %d != %d", width, text, value, expected.value)
		}
	}

	// Perform tests.
	for _, testCase := range testCases {
		v8, err := ParseInt8(testCase.text)
		check("int8", testCase.text, testCase.int8, int64(v8), err)
		v16, err := ParseInt16(testCase.text)
		check("int16", testCase.text, testCase.int16, int64(v16), err)
		v32, err := ParseInt32(testCase.text)
		check("int32", testCase.text, testCase.int32, int64(v32), err)
		v64, err := ParseInt64(testCase.text)
		check("int64", testCase.text, testCase.int64, v64, err)
	}
}

// TestParseIntegerRangeCause tests that out-of-range failures report a range
// error as their cause.
func TestParseIntegerRangeCause(t *testing.T) {
	_, err := ParseInt8("200")
	if !errors.Is(err, strconv.ErrRange) {
		t.Error("out-of-range failure does not wrap range error:", err)
	}
	_, err = ParseInt8("abc")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("syntax failure does not wrap syntax error:", err)
	}
}

// TestParseFloats tests floating point parsing.
func TestParseFloats(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		text    string
		valid32 bool
		valid64 bool
		value   float64
	}{
		{"1.5", true, true, 1.5},
		{"-0.25", true, true, -0.25},
		{"+2", true, true, 2},
		{"6.02e23", true, true, 6.02e23},
		{"1E-3", true, true, 1e-3},
		{".5", true, true, 0.5},
		{"1e39", false, true, 1e39},
		{"1e400", false, false, 0},
		{"", false, false, 0},
		{" 1.5", false, false, 0},
		{"1.5 ", false, false, 0},
		{"1,5", false, false, 0},
		{"abc", false, false, 0},
		{"Inf", false, false, 0},
		{"-inf", false, false, 0},
		{"infinity", false, false, 0},
		{"NaN", false, false, 0},
		{"0x1p4", false, false, 0},
		{"0x10", false, false, 0},
		{"1_000", false, false, 0},
		{".", false, false, 0},
		{"1e", false, false, 0},
	}

	// Perform tests.
	for _, testCase := range testCases {
		v32, err := ParseFloat32(testCase.text)
		if testCase.valid32 && err != nil {
			t.Errorf("float32 parse of %q failed: %v", testCase.text, err)
		} else if !testCase.valid32 && err == nil {
			t.Errorf("float32 parse of %q succeeded with %v", testCase.text, v32)
		} else if testCase.valid32 && v32 != float32(testCase.value) {
			t.Errorf("float32 parse of %q does not match expected: %v != %v", testCase.text, v32, float32(testCase.value))
		}
		v64, err := ParseFloat64(testCase.text)
		if testCase.valid64 && err != nil {
			t.Errorf("float64 parse of %q failed: %v", testCase.text, err)
		} else if !testCase.valid64 && err == nil {
			t.Errorf("float64 parse of %q succeeded with %v", testCase.text, v64)
		} else if testCase.valid64 && v64 != testCase.value {
			t.Errorf("float64 parse of %q does not match expected: %v != %v", testCase.text, v64, testCase.value)
		}
	}
}

// TestParseBigInt tests arbitrary-precision integer parsing.
func TestParseBigInt(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		text     string
		expected string
	}{
		{"0", "0"},
		{"-7", "-7"},
		{"+15", "15"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-99999999999999999999999999999999999999", "-99999999999999999999999999999999999999"},
		{"", ""},
		{"-", ""},
		{"12a", ""},
		{" 12", ""},
		{"1.0", ""},
		{"0x1f", ""},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := ParseBigInt(testCase.text)
		if testCase.expected == "" {
			if err == nil {
				t.Errorf("bigint parse of %q succeeded with %v", testCase.text, value)
			} else if !IsParseFailure(err) {
				t.Errorf("bigint parse of %q failed with non-parse error: %v", testCase.text, err)
			}
		} else if err != nil {
			t.Errorf("bigint parse of %q failed: %v", testCase.text, err)
		} else if value.String() != testCase.expected {
			t.Errorf("bigint parse of %q does not match expected: %v != %s", testCase.text, value, testCase.expected)
		}
	}
}

// TestParseBigDecimal tests arbitrary-precision decimal parsing.
func TestParseBigDecimal(t *testing.T) {
	// Set up test cases. An empty coefficient indicates that parsing should
	// fail.
	testCases := []struct {
		text        string
		coefficient string
		exponent    int32
	}{
		{"0", "0", 0},
		{"-12.50", "-1250", -2},
		{"+3", "3", 0},
		{".5", "5", -1},
		{"1.", "1", 0},
		{"1e-3", "1", -3},
		{"1.5E+2", "15", 1},
		{"6.02e23", "602", 21},
		{"0.000", "0", -3},
		{"123456789012345678901234567890.000000001", "123456789012345678901234567890000000001", -9},
		{"1e100000", "1", 100000},
		{"-7e-100000", "-7", -100000},
		{"", "", 0},
		{".", "", 0},
		{"-", "", 0},
		{"e5", "", 0},
		{"1e", "", 0},
		{"1/3", "", 0},
		{" 1.5", "", 0},
		{"1.5 ", "", 0},
		{"1.2.3", "", 0},
		{"1e99999999999", "", 0},
		{"NaN", "", 0},
		{"Infinity", "", 0},
		{"0x1p4", "", 0},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := ParseBigDecimal(testCase.text)
		if testCase.coefficient == "" {
			if err == nil {
				t.Errorf("bigdecimal parse of %q succeeded with %v", testCase.text, value)
			} else if !IsParseFailure(err) {
				t.Errorf("bigdecimal parse of %q failed with non-parse error: %v", testCase.text, err)
			}
		} else if err != nil {
			t.Errorf("bigdecimal parse of %q failed: %v", testCase.text, err)
		} else if coefficient := value.Coefficient().String(); coefficient != testCase.coefficient {
			t.Errorf("bigdecimal parse of %q has unexpected coefficient: %s != %s", testCase.text, coefficient, testCase.coefficient)
		} else if exponent := value.Exponent(); exponent != testCase.exponent {
			t.Errorf("bigdecimal parse of %q has unexpected exponent: %d != %d", testCase.text, exponent, testCase.exponent)
		}
	}
}

// TestParseString tests that string parsing is the identity.
func TestParseString(t *testing.T) {
	for _, text := range []string{"", " ", "abc", " padded ", "-7"} {
		if value, err := ParseString(text); err != nil {
			t.Errorf("string parse of %q failed: %v", text, err)
		} else if value != text {
			t.Errorf("string parse of %q does not match: %q", text, value)
		}
	}
}
