package cart

import "github.com/angelmondragon/storefront-backend/pkg/enums"

// CheckoutDecision is the outcome of the checkout gate.
type CheckoutDecision struct {
	Allowed bool
	Reason  enums.CheckoutBlockReason
	// OutOfStock lists the offending product ids when Reason is out_of_stock.
	OutOfStock []int64
}

// CheckCheckout blocks an empty cart and any cart holding an out of stock line.
func CheckCheckout(lines []Line) CheckoutDecision {
	if len(lines) == 0 {
		return CheckoutDecision{Reason: enums.CheckoutBlockEmptyCart}
	}
	var blocked []int64
	for _, l := range lines {
		if !l.InStock {
			blocked = append(blocked, l.ProductID)
		}
	}
	if len(blocked) > 0 {
		return CheckoutDecision{Reason: enums.CheckoutBlockOutOfStock, OutOfStock: blocked}
	}
	return CheckoutDecision{Allowed: true}
}
