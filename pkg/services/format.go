package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jselby/budgetlink/pkg/models"
)

// FormatValue renders a raw field value for display according to a
// column's formatting flags. Unparseable values pass through
// unchanged; display formatting never fails a render.
func FormatValue(cfg models.ColumnConfig, value string) string {
	switch {
	case cfg.UseCheckbox:
		if value == "true" || value == "1" {
			return "[x]"
		}
		return "[ ]"
	case cfg.UseCurrency:
		return formatCurrency(cfg, value)
	case cfg.UseDatetime:
		return formatDatetime(cfg, value)
	case cfg.UseLinkIcon:
		if value != "" {
			return "@"
		}
		return ""
	default:
		return value
	}
}

func formatCurrency(cfg models.ColumnConfig, value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	if cfg.DisableNegativeSign {
		d = d.Abs()
	} else if cfg.InvertNegativeSign {
		d = d.Neg()
	}
	// Two-decimal rounding for display regardless of stored precision.
	d = d.Round(2)
	if cfg.UseThousandsSeparator {
		amount := models.Amount{Value: d.StringFixed(2), Currency: "USD"}
		return amount.ToMoney().Display()
	}
	return "$" + d.StringFixed(2)
}

func formatDatetime(cfg models.ColumnConfig, value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	layout := cfg.DatetimeFormat
	if layout == "" {
		layout = time.DateOnly
	}
	return parsed.Format(layout)
}
