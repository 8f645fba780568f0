package models

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// milliPerUnit is the YNAB fixed-point scale: one currency unit is
// represented as 1000 integer milliunits.
var milliPerUnit = decimal.NewFromInt(1000)

// Amount represents a monetary amount as a decimal string plus a
// currency code.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// AmountFromMilliunits converts a YNAB milliunit balance into a local
// decimal Amount. Whole and two-decimal values render with two decimal
// places; a nonzero third decimal is preserved.
func AmountFromMilliunits(milli int64, currency string) Amount {
	d := decimal.NewFromInt(milli).Div(milliPerUnit)
	value := d.String()
	if d.Truncate(2).Equal(d) {
		value = d.StringFixed(2)
	}
	return Amount{Value: value, Currency: currency}
}

// ToMilliunits converts the amount back to the YNAB integer scale.
func (a *Amount) ToMilliunits() (int64, error) {
	d, err := decimal.NewFromString(a.Value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount %q: %w", a.Value, err)
	}
	return d.Mul(milliPerUnit).Round(0).IntPart(), nil
}

func (a *Amount) ToMoney() *money.Money {
	fraction := 2
	if currency := money.GetCurrency(a.Currency); currency != nil {
		fraction = currency.Fraction
	}
	d, err := decimal.NewFromString(a.Value)
	if err != nil {
		panic(fmt.Sprintf("failed to parse amount %q: %v", a.Value, err))
	}
	units := d.Shift(int32(fraction)).Truncate(0).IntPart()
	return money.New(units, a.Currency)
}
