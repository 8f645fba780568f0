package models

import "strings"

// CrossReference substitutes a human label for a raw external
// vocabulary token, scoped to a record type and one or more columns.
type CrossReference struct {
	ID           int64  `json:"id"`
	RecordType   string `json:"recordType"`
	SourceValue  string `json:"sourceValue"`
	DisplayValue string `json:"displayValue"`
	// Column holds a comma-joined set of field names the substitution
	// applies to.
	Column  string `json:"column"`
	Enabled bool   `json:"enabled"`
}

// AppliesTo reports whether the cross-reference covers the given field.
func (c *CrossReference) AppliesTo(field string) bool {
	for _, col := range strings.Split(c.Column, ",") {
		if strings.TrimSpace(col) == field {
			return true
		}
	}
	return false
}

// AccountTypeMapping maps one YNAB account type code to a local record
// category, optionally carrying a default subtype for record creation.
type AccountTypeMapping struct {
	ID               int64          `json:"id"`
	YNABType         string         `json:"ynabType"`
	Category         RecordCategory `json:"category"`
	DefaultSubtypeID *int64         `json:"defaultSubtypeId"`
	Enabled          bool           `json:"enabled"`
}

// ColumnConfig describes one display column of a record-type grid.
type ColumnConfig struct {
	RecordType string `json:"recordType"`
	Field      string `json:"field"`
	HeaderName string `json:"headerName"`
	Visible    bool   `json:"visible"`
	// Order is the index among visible columns; hidden columns carry
	// the HiddenOrder sentinel.
	Order int `json:"order"`
	Width int `json:"width"`

	UseCheckbox           bool   `json:"useCheckbox"`
	UseCurrency           bool   `json:"useCurrency"`
	InvertNegativeSign    bool   `json:"invertNegativeSign"`
	DisableNegativeSign   bool   `json:"disableNegativeSign"`
	UseThousandsSeparator bool   `json:"useThousandsSeparator"`
	UseDatetime           bool   `json:"useDatetime"`
	DatetimeFormat        string `json:"datetimeFormat"`
	UseLinkIcon           bool   `json:"useLinkIcon"`
}

// HiddenOrder keeps hidden columns from ever interleaving with the
// visible ordering.
const HiddenOrder = 999
