package cart

import (
	"errors"
	"testing"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
)

func rejectionReason(t *testing.T, err error) enums.CouponRejection {
	t.Helper()
	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected a RejectionError, got %v", err)
	}
	return rejection.Reason
}

func TestValidateCouponBelowMinimum(t *testing.T) {
	_, err := ValidateCoupon(FixtureCoupons(), "WELCOME20", money.FromDollars(120))
	if got := rejectionReason(t, err); got != enums.CouponRejectionBelowMinimum {
		t.Fatalf("expected below_minimum, got %s", got)
	}
	if err.Error() != "coupon WELCOME20 requires a subtotal of at least $150.00" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidateCouponMinimumIsInclusive(t *testing.T) {
	coupon, err := ValidateCoupon(FixtureCoupons(), "welcome20", money.FromDollars(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coupon.Code != "WELCOME20" || coupon.Describe() != "$20.00 off" {
		t.Fatalf("unexpected coupon %+v", coupon)
	}
}

func TestValidateCouponUnknown(t *testing.T) {
	for _, code := range []string{"FREESTUFF", "", "   "} {
		_, err := ValidateCoupon(FixtureCoupons(), code, money.FromDollars(500))
		if got := rejectionReason(t, err); got != enums.CouponRejectionNotFound {
			t.Fatalf("code %q: expected not_found, got %s", code, got)
		}
	}
}

func TestApplyCouponRejectsSecondCoupon(t *testing.T) {
	_, err := ApplyCoupon("SAVE10", FixtureCoupons(), "SUMMER25", money.FromDollars(300))
	if got := rejectionReason(t, err); got != enums.CouponRejectionAlreadyApplied {
		t.Fatalf("expected already_applied, got %s", got)
	}

	coupon, err := ApplyCoupon("", FixtureCoupons(), " summer25 ", money.FromDollars(300))
	if err != nil || coupon.Code != "SUMMER25" {
		t.Fatalf("expected SUMMER25 to apply, got %+v err=%v", coupon, err)
	}
	if coupon.Describe() != "25% off" {
		t.Fatalf("unexpected description %q", coupon.Describe())
	}
}

func TestCouponModelRoundTripNormalizesCode(t *testing.T) {
	model := Coupon{Code: "save10", Kind: enums.CouponKindPercentage, Amount: 10}.ToModel()
	if model.Code != "SAVE10" || model.MinimumSubtotalCents != nil {
		t.Fatalf("unexpected model %+v", model)
	}
}
