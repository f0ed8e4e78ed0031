package enums

import "fmt"

// CartStatus tracks whether a cart session is still editable.
type CartStatus string

const (
	CartStatusActive     CartStatus = "active"
	CartStatusCheckedOut CartStatus = "checked_out"
)

var validCartStatuses = []CartStatus{
	CartStatusActive,
	CartStatusCheckedOut,
}

// String implements fmt.Stringer.
func (c CartStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CartStatus.
func (c CartStatus) IsValid() bool {
	for _, candidate := range validCartStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartStatus converts raw input into a CartStatus.
func ParseCartStatus(value string) (CartStatus, error) {
	for _, candidate := range validCartStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart status %q", value)
}

// CheckoutBlockReason names the rule that prevented checkout.
type CheckoutBlockReason string

const (
	CheckoutBlockEmptyCart  CheckoutBlockReason = "empty_cart"
	CheckoutBlockOutOfStock CheckoutBlockReason = "out_of_stock"
)

// String implements fmt.Stringer.
func (r CheckoutBlockReason) String() string {
	return string(r)
}

// Message returns the shopper-facing explanation.
func (r CheckoutBlockReason) Message() string {
	switch r {
	case CheckoutBlockEmptyCart:
		return "your cart is empty"
	case CheckoutBlockOutOfStock:
		return "please remove out of stock items before checkout"
	}
	return string(r)
}
