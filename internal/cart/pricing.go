package cart

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/money"
)

const (
	// FreeShippingThresholdCents is the subtotal above which shipping is free.
	FreeShippingThresholdCents money.Cents = 10000
	// FlatShippingCents is charged at or below the threshold, including on an empty cart.
	FlatShippingCents money.Cents = 1500
	// TaxRatePercent applies to the subtotal only.
	TaxRatePercent = 8
)

var taxRate = decimal.NewFromInt(TaxRatePercent)

// Totals is the order summary breakdown.
type Totals struct {
	Subtotal money.Cents
	Shipping money.Cents
	Tax      money.Cents
	Discount money.Cents
	Total    money.Cents
}

// ComputeTotals prices lines with an optional coupon. Tax and discount are both
// taken on the pre-discount subtotal; the total never goes below zero.
func ComputeTotals(lines []Line, coupon *Coupon) Totals {
	var subtotal money.Cents
	for _, l := range lines {
		subtotal += l.Subtotal()
	}

	t := Totals{
		Subtotal: subtotal,
		Shipping: Shipping(subtotal),
		Tax:      Tax(subtotal),
	}
	if coupon != nil {
		t.Discount = coupon.Discount(subtotal)
	}
	t.Total = money.Max(0, t.Subtotal+t.Shipping+t.Tax-t.Discount)
	return t
}

// Shipping returns the shipping charge for subtotal.
func Shipping(subtotal money.Cents) money.Cents {
	if subtotal > FreeShippingThresholdCents {
		return 0
	}
	return FlatShippingCents
}

// Tax returns the rounded sales tax on subtotal.
func Tax(subtotal money.Cents) money.Cents {
	return subtotal.Percent(taxRate)
}
