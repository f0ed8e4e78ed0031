package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
)

// Coupon is a redeemable promotion. Amount is percentage points for percentage
// coupons and cents for fixed coupons.
type Coupon struct {
	Code                 string
	Kind                 enums.CouponKind
	Amount               int64
	MinimumSubtotalCents *money.Cents
}

// Discount returns the amount the coupon takes off subtotal.
func (c Coupon) Discount(subtotal money.Cents) money.Cents {
	switch c.Kind {
	case enums.CouponKindPercentage:
		return subtotal.Percent(decimal.NewFromInt(c.Amount))
	case enums.CouponKindFixed:
		return money.Cents(c.Amount)
	}
	return 0
}

// Describe renders the coupon's value for display, e.g. "10% off" or "$20.00 off".
func (c Coupon) Describe() string {
	if c.Kind == enums.CouponKindPercentage {
		return fmt.Sprintf("%d%% off", c.Amount)
	}
	return money.Format(money.Cents(c.Amount)) + " off"
}

// RejectionError is returned when a coupon cannot be applied.
type RejectionError struct {
	Code    string
	Reason  enums.CouponRejection
	Minimum money.Cents
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case enums.CouponRejectionNotFound:
		return fmt.Sprintf("coupon %q is not valid", e.Code)
	case enums.CouponRejectionBelowMinimum:
		return fmt.Sprintf("coupon %s requires a subtotal of at least %s", e.Code, money.Format(e.Minimum))
	case enums.CouponRejectionAlreadyApplied:
		return "a coupon is already applied; remove it first"
	}
	return fmt.Sprintf("coupon %q rejected: %s", e.Code, e.Reason)
}

// NormalizeCode upper-cases and trims a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCoupon looks code up case-insensitively and checks its minimum subtotal
// (inclusive).
func ValidateCoupon(known []Coupon, code string, subtotal money.Cents) (*Coupon, error) {
	normalized := NormalizeCode(code)
	for _, c := range known {
		if NormalizeCode(c.Code) != normalized || normalized == "" {
			continue
		}
		if c.MinimumSubtotalCents != nil && subtotal < *c.MinimumSubtotalCents {
			return nil, &RejectionError{Code: c.Code, Reason: enums.CouponRejectionBelowMinimum, Minimum: *c.MinimumSubtotalCents}
		}
		found := c
		return &found, nil
	}
	return nil, &RejectionError{Code: normalized, Reason: enums.CouponRejectionNotFound}
}

// ApplyCoupon validates code against a cart that may already carry activeCode.
// Only one coupon may be active at a time.
func ApplyCoupon(activeCode string, known []Coupon, code string, subtotal money.Cents) (*Coupon, error) {
	if NormalizeCode(activeCode) != "" {
		return nil, &RejectionError{Code: NormalizeCode(code), Reason: enums.CouponRejectionAlreadyApplied}
	}
	return ValidateCoupon(known, code, subtotal)
}

// FixtureCoupons returns the seeded promotions.
func FixtureCoupons() []Coupon {
	minimum := func(dollars int64) *money.Cents {
		v := money.FromDollars(dollars)
		return &v
	}
	return []Coupon{
		{Code: "SAVE10", Kind: enums.CouponKindPercentage, Amount: 10, MinimumSubtotalCents: minimum(100)},
		{Code: "WELCOME20", Kind: enums.CouponKindFixed, Amount: int64(money.FromDollars(20)), MinimumSubtotalCents: minimum(150)},
		{Code: "SUMMER25", Kind: enums.CouponKindPercentage, Amount: 25, MinimumSubtotalCents: minimum(200)},
	}
}

// CouponFromModel maps a persisted coupon.
func CouponFromModel(m models.Coupon) Coupon {
	c := Coupon{Code: m.Code, Kind: m.Kind, Amount: m.Amount}
	if m.MinimumSubtotalCents != nil {
		v := money.Cents(*m.MinimumSubtotalCents)
		c.MinimumSubtotalCents = &v
	}
	return c
}

// ToModel maps the coupon into its persisted form.
func (c Coupon) ToModel() models.Coupon {
	m := models.Coupon{Code: NormalizeCode(c.Code), Kind: c.Kind, Amount: c.Amount}
	if c.MinimumSubtotalCents != nil {
		v := int64(*c.MinimumSubtotalCents)
		m.MinimumSubtotalCents = &v
	}
	return m
}
