package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units (USD cents).
type Cents int64

const centsPerUnit = 100

var hundred = decimal.NewFromInt(centsPerUnit)

// FromDollars converts a whole-dollar amount into cents.
func FromDollars(dollars int64) Cents {
	return Cents(dollars * centsPerUnit)
}

// Decimal returns the amount expressed in currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(hundred)
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// Percent returns pct percent of the amount, rounded half away from zero to the cent.
func (c Cents) Percent(pct decimal.Decimal) Cents {
	value := decimal.NewFromInt(int64(c)).Mul(pct).Div(hundred)
	return Cents(value.Round(0).IntPart())
}

// Max returns the larger amount.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// String renders the amount for display, e.g. "$99.00".
func (c Cents) String() string {
	return Format(c)
}

// Format renders an amount as a dollar string with two decimals.
func Format(c Cents) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%s", sign, c.Decimal().StringFixed(2))
}

// FormatRange renders a price range ("$99.00 - $129.00"); equal bounds collapse to one value.
func FormatRange(low, high Cents) string {
	if low == high {
		return Format(low)
	}
	if low > high {
		low, high = high, low
	}
	return fmt.Sprintf("%s - %s", Format(low), Format(high))
}
