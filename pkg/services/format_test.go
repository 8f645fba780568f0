package services

import (
	"testing"

	"github.com/jselby/budgetlink/pkg/models"
)

func TestFormatValueCheckbox(t *testing.T) {
	cfg := models.ColumnConfig{UseCheckbox: true}

	testCases := []struct {
		value    string
		expected string
	}{
		{"true", "[x]"},
		{"1", "[x]"},
		{"false", "[ ]"},
		{"0", "[ ]"},
		{"", "[ ]"},
	}
	for _, tc := range testCases {
		if got := FormatValue(cfg, tc.value); got != tc.expected {
			t.Errorf("FormatValue(checkbox, %q) = %q, expected %q", tc.value, got, tc.expected)
		}
	}
}

func TestFormatValueCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      models.ColumnConfig
		value    string
		expected string
	}{
		{
			name:     "Plain currency",
			cfg:      models.ColumnConfig{UseCurrency: true},
			value:    "50.00",
			expected: "$50.00",
		},
		{
			name:     "Rounds to two decimals",
			cfg:      models.ColumnConfig{UseCurrency: true},
			value:    "123.456",
			expected: "$123.46",
		},
		{
			name:     "Thousands separator",
			cfg:      models.ColumnConfig{UseCurrency: true, UseThousandsSeparator: true},
			value:    "1234567.89",
			expected: "$1,234,567.89",
		},
		{
			name:     "Disable negative sign",
			cfg:      models.ColumnConfig{UseCurrency: true, DisableNegativeSign: true},
			value:    "-250.50",
			expected: "$250.50",
		},
		{
			name:     "Invert negative sign",
			cfg:      models.ColumnConfig{UseCurrency: true, InvertNegativeSign: true},
			value:    "-250.50",
			expected: "$250.50",
		},
		{
			name:     "Invert flips positive too",
			cfg:      models.ColumnConfig{UseCurrency: true, InvertNegativeSign: true},
			value:    "250.50",
			expected: "$-250.50",
		},
		{
			name:     "Unparseable passes through",
			cfg:      models.ColumnConfig{UseCurrency: true},
			value:    "n/a",
			expected: "n/a",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.cfg, tc.value); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFormatValueDatetime(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      models.ColumnConfig
		value    string
		expected string
	}{
		{
			name:     "Default layout",
			cfg:      models.ColumnConfig{UseDatetime: true},
			value:    "2026-01-15T10:30:00Z",
			expected: "2026-01-15",
		},
		{
			name:     "Custom layout",
			cfg:      models.ColumnConfig{UseDatetime: true, DatetimeFormat: "2006-01-02 15:04"},
			value:    "2026-01-15T10:30:00Z",
			expected: "2026-01-15 10:30",
		},
		{
			name:     "Unparseable passes through",
			cfg:      models.ColumnConfig{UseDatetime: true},
			value:    "never",
			expected: "never",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.cfg, tc.value); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFormatValueLinkIcon(t *testing.T) {
	cfg := models.ColumnConfig{UseLinkIcon: true}
	if got := FormatValue(cfg, "ynab-acc-1"); got != "@" {
		t.Errorf("Expected icon for linked value, got %q", got)
	}
	if got := FormatValue(cfg, ""); got != "" {
		t.Errorf("Expected empty for unlinked value, got %q", got)
	}
}

func TestFormatValueRaw(t *testing.T) {
	if got := FormatValue(models.ColumnConfig{}, "anything"); got != "anything" {
		t.Errorf("Expected raw pass-through, got %q", got)
	}
}
