package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/mutagen-io/prompter/pkg/prompting"
)

// TestRunSample tests the sample program, including a retry.
func TestRunSample(t *testing.T) {
	// Create a prompter and an output buffer.
	transcript := &bytes.Buffer{}
	prompter := prompting.NewPrompter(strings.NewReader("forty\n40\n1985\n"), transcript, nil)

	// Run the sample.
	if err := runSample(prompter, transcript); err != nil {
		t.Fatal("sample failed:", err)
	}

	// Verify the transcript.
	expected := "How old are you? " + prompting.DefaultErrorMessage + "\n" +
		"How old are you? What year were you born? " +
		"Then, we must be in the year 2025 or 2026\n"
	if diff := cmp.Diff(expected, transcript.String()); diff != "" {
		t.Error("transcript does not match expected (-want +got):\n", diff)
	}
}

// TestRunSampleEndOfInput tests that the sample fails when input runs out.
func TestRunSampleEndOfInput(t *testing.T) {
	prompter := prompting.NewPrompter(strings.NewReader("40\n"), &bytes.Buffer{}, nil)
	if err := runSample(prompter, &bytes.Buffer{}); !errors.Is(err, prompting.ErrEndOfInput) {
		t.Error("sample did not fail with end of input:", err)
	}
}

// TestAskers tests that every advertised type has an asker and that each
// prints its value in canonical form.
func TestAskers(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		valueType string
		input     string
		humanized bool
		expected  string
	}{
		{"string", "  hello  ", false, "  hello  "},
		{"int8", "-12", false, "-12"},
		{"int16", "+300", false, "300"},
		{"int32", "1234567", true, "1,234,567"},
		{"int64", "-9000000000", true, "-9,000,000,000"},
		{"int", "7", false, "7"},
		{"float32", "0.1", false, "0.1"},
		{"float32", "0.1", true, "0.1"},
		{"float32", "1234.5", true, "1,234.5"},
		{"float64", "1e3", false, "1000"},
		{"float64", "1234.5", true, "1,234.5"},
		{"bigint", "123456789012345678901234567890", true, "123,456,789,012,345,678,901,234,567,890"},
		{"bigdecimal", "-12.50", false, "-12.50"},
		{"bigdecimal", "0.000", false, "0.000"},
		{"bigdecimal", "1.5e2", false, "150"},
		{"bigdecimal", "2.5e-3", false, "0.0025"},
		{"bigdecimal", "1234567.80", true, "1,234,567.80"},
		{"bigdecimal", "-1234567.125", true, "-1,234,567.125"},
	}

	// Verify that the table covers every type.
	covered := make(map[string]bool)
	for _, testCase := range testCases {
		covered[testCase.valueType] = true
	}
	for _, name := range askTypeNames {
		if _, ok := askers[name]; !ok {
			t.Error("advertised type has no asker:", name)
		} else if !covered[name] {
			t.Error("advertised type not tested:", name)
		}
	}
	if len(askers) != len(askTypeNames) {
		t.Error("asker and type name counts differ")
	}

	// Perform tests.
	for _, testCase := range testCases {
		prompter := prompting.NewPrompter(strings.NewReader(testCase.input+"\n"), &bytes.Buffer{}, nil)
		value, err := askers[testCase.valueType](prompter, "> ", testCase.humanized)
		if err != nil {
			t.Errorf("%s asker failed for %q: %v", testCase.valueType, testCase.input, err)
		} else if value != testCase.expected {
			t.Errorf("%s asker output for %q does not match expected: %q != %q", testCase.valueType, testCase.input, value, testCase.expected)
		}
	}
}

// TestValueTypeFlag tests validation of the ask command's type flag.
func TestValueTypeFlag(t *testing.T) {
	var flag valueTypeFlag
	if err := flag.Set("bigdecimal"); err != nil {
		t.Error("supported type rejected:", err)
	} else if flag.String() != "bigdecimal" {
		t.Error("flag value not updated:", flag.String())
	}
	if err := flag.Set("uint8"); err == nil {
		t.Error("unsupported type accepted")
	} else if flag.String() != "bigdecimal" {
		t.Error("flag value modified by rejected type:", flag.String())
	}
}
