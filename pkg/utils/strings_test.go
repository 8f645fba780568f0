package utils

import (
	"testing"
)

func TestCapitalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"credit card", "Credit Card"},
		{"CHECKING", "Checking"},
		{"other liability", "Other Liability"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := Capitalize(tc.input); got != tc.expected {
			t.Errorf("Capitalize(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestSplitCamelCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"creditCard", "credit Card"},
		{"lineOfCredit", "line Of Credit"},
		{"checking", "checking"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := SplitCamelCase(tc.input); got != tc.expected {
			t.Errorf("SplitCamelCase(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Credit Card", "creditcard"},
		{"auto-loan", "autoloan"},
		{"Savings 2", "savings2"},
		{"  ", ""},
	}

	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
