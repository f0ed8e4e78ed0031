package cart

import (
	"testing"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
)

func line(id int64, dollars int64, qty int) Line {
	return Line{ProductID: id, UnitPriceCents: money.FromDollars(dollars), Quantity: qty, InStock: true}
}

func TestComputeTotalsReferenceScenario(t *testing.T) {
	totals := ComputeTotals([]Line{line(1, 99, 2), line(2, 149, 1)}, nil)

	want := Totals{Subtotal: 34700, Shipping: 0, Tax: 2776, Discount: 0, Total: 37476}
	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
}

func TestShippingBoundaryIsStrict(t *testing.T) {
	at := ComputeTotals([]Line{{ProductID: 1, UnitPriceCents: 10000, Quantity: 1}}, nil)
	if at.Shipping != FlatShippingCents {
		t.Fatalf("expected flat shipping at exactly $100.00, got %d", at.Shipping)
	}
	above := ComputeTotals([]Line{{ProductID: 1, UnitPriceCents: 10001, Quantity: 1}}, nil)
	if above.Shipping != 0 {
		t.Fatalf("expected free shipping at $100.01, got %d", above.Shipping)
	}
}

func TestComputeTotalsWithPercentageCoupon(t *testing.T) {
	coupon, err := ValidateCoupon(FixtureCoupons(), "save10", money.FromDollars(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	totals := ComputeTotals([]Line{line(1, 150, 1)}, coupon)
	if totals.Discount != 1500 {
		t.Fatalf("expected $15.00 discount, got %d", totals.Discount)
	}
	if totals.Tax != 1200 {
		t.Fatalf("expected tax on pre-discount subtotal, got %d", totals.Tax)
	}
	if totals.Total != 14700 {
		t.Fatalf("expected total 14700, got %d", totals.Total)
	}
}

func TestComputeTotalsWithFixedCoupon(t *testing.T) {
	coupon := &Coupon{Code: "WELCOME20", Kind: enums.CouponKindFixed, Amount: 2000}
	totals := ComputeTotals([]Line{line(1, 200, 1)}, coupon)
	if totals.Discount != 2000 || totals.Total != 20000+0+1600-2000 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestComputeTotalsFloorsAtZero(t *testing.T) {
	coupon := &Coupon{Code: "HUGE", Kind: enums.CouponKindFixed, Amount: 1_000_000}
	totals := ComputeTotals([]Line{line(1, 50, 1)}, coupon)
	if totals.Total != 0 {
		t.Fatalf("expected total floored at zero, got %d", totals.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, nil)
	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Shipping != FlatShippingCents || totals.Total != FlatShippingCents {
		t.Fatalf("unexpected empty cart totals %+v", totals)
	}
}

func TestDiscountRoundsHalfAwayFromZero(t *testing.T) {
	coupon := Coupon{Kind: enums.CouponKindPercentage, Amount: 25}
	if got := coupon.Discount(1999); got != 500 {
		t.Fatalf("expected 499.75 cents to round to 500, got %d", got)
	}
	if got := Tax(10001); got != 800 {
		t.Fatalf("expected 800.08 cents to round to 800, got %d", got)
	}
}

func TestTotalIdentity(t *testing.T) {
	for _, code := range []string{"", "SAVE10", "WELCOME20", "SUMMER25"} {
		lines := []Line{line(1, 99, 2), line(2, 149, 1)}
		var coupon *Coupon
		if code != "" {
			c, err := ValidateCoupon(FixtureCoupons(), code, money.FromDollars(347))
			if err != nil {
				t.Fatalf("validate %s: %v", code, err)
			}
			coupon = c
		}
		totals := ComputeTotals(lines, coupon)
		want := money.Max(0, totals.Subtotal+totals.Shipping+totals.Tax-totals.Discount)
		if totals.Total != want {
			t.Fatalf("coupon %q: total %d does not match components %d", code, totals.Total, want)
		}
	}
}
