package cart

import "github.com/angelmondragon/storefront-backend/pkg/money"

// MaxLineQuantity is the most units a single cart line may hold.
const MaxLineQuantity = 99

// Line is a product in the cart. UnitPriceCents is locked when the product is added.
type Line struct {
	ProductID      int64
	Name           string
	Color          string
	Size           string
	UnitPriceCents money.Cents
	Quantity       int
	InStock        bool
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() money.Cents {
	return l.UnitPriceCents.Mul(l.Quantity)
}

// The helpers below never mutate their input and never leave a line with quantity < 1.

// Add appends line, or bumps the existing line for the same product. The existing
// line keeps its locked price and display snapshot. Quantities below 1 count as 1.
func Add(lines []Line, line Line) []Line {
	qty := line.Quantity
	if qty < 1 {
		qty = 1
	}
	out := clone(lines)
	if i := indexOf(out, line.ProductID); i >= 0 {
		out[i].Quantity += qty
		return out
	}
	line.Quantity = qty
	return append(out, line)
}

// Increment adds one unit. The bool reports whether the product was in the cart.
func Increment(lines []Line, productID int64) ([]Line, bool) {
	i := indexOf(lines, productID)
	if i < 0 {
		return clone(lines), false
	}
	return SetQuantity(lines, productID, lines[i].Quantity+1)
}

// Decrement removes one unit; the last unit removes the line.
func Decrement(lines []Line, productID int64) ([]Line, bool) {
	i := indexOf(lines, productID)
	if i < 0 {
		return clone(lines), false
	}
	return SetQuantity(lines, productID, lines[i].Quantity-1)
}

// SetQuantity replaces the quantity; qty <= 0 removes the line.
func SetQuantity(lines []Line, productID int64, qty int) ([]Line, bool) {
	if qty <= 0 {
		return Remove(lines, productID)
	}
	out := clone(lines)
	i := indexOf(out, productID)
	if i < 0 {
		return out, false
	}
	out[i].Quantity = qty
	return out, true
}

// Remove drops the line for productID.
func Remove(lines []Line, productID int64) ([]Line, bool) {
	out := make([]Line, 0, len(lines))
	found := false
	for _, l := range lines {
		if l.ProductID == productID {
			found = true
			continue
		}
		out = append(out, l)
	}
	return out, found
}

// MoveToWishlist removes the line and returns it for the wishlist. The returned
// line is nil when the product was not in the cart.
func MoveToWishlist(lines []Line, productID int64) ([]Line, *Line) {
	i := indexOf(lines, productID)
	if i < 0 {
		return clone(lines), nil
	}
	moved := lines[i]
	out, _ := Remove(lines, productID)
	return out, &moved
}

// Find returns the line for productID.
func Find(lines []Line, productID int64) (Line, bool) {
	if i := indexOf(lines, productID); i >= 0 {
		return lines[i], true
	}
	return Line{}, false
}

// ItemCount is the total number of units across lines.
func ItemCount(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func indexOf(lines []Line, productID int64) int {
	for i, l := range lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func clone(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// grownPastLimit returns the first line of next holding more than MaxLineQuantity units
// and more units than it held in prev. Lines already over the limit may still shrink.
func grownPastLimit(prev, next []Line) (Line, bool) {
	for _, l := range next {
		if l.Quantity <= MaxLineQuantity {
			continue
		}
		if i := indexOf(prev, l.ProductID); i >= 0 && prev[i].Quantity >= l.Quantity {
			continue
		}
		return l, true
	}
	return Line{}, false
}
