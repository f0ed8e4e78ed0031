package cart

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

// LineDTO is a cart row.
type LineDTO struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`
	Size           string `json:"size,omitempty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	UnitPrice      string `json:"unit_price"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
	LineTotal      string `json:"line_total"`
	InStock        bool   `json:"in_stock"`
	Link           string `json:"link,omitempty"`
}

// TotalsDTO is the order summary in cents plus display strings.
type TotalsDTO struct {
	SubtotalCents int64  `json:"subtotal_cents"`
	ShippingCents int64  `json:"shipping_cents"`
	TaxCents      int64  `json:"tax_cents"`
	DiscountCents int64  `json:"discount_cents"`
	TotalCents    int64  `json:"total_cents"`
	Subtotal      string `json:"subtotal"`
	Shipping      string `json:"shipping"`
	Tax           string `json:"tax"`
	Discount      string `json:"discount"`
	Total         string `json:"total"`
	FreeShipping  bool   `json:"free_shipping"`
}

// CouponDTO describes the active coupon.
type CouponDTO struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// CheckoutGateDTO reports whether checkout is currently possible.
type CheckoutGateDTO struct {
	Allowed              bool    `json:"allowed"`
	Reason               string  `json:"reason,omitempty"`
	Message              string  `json:"message,omitempty"`
	OutOfStockProductIDs []int64 `json:"out_of_stock_product_ids,omitempty"`
}

// SummaryDTO is the order summary panel.
type SummaryDTO struct {
	ItemCount int             `json:"item_count"`
	Coupon    *CouponDTO      `json:"coupon,omitempty"`
	Totals    TotalsDTO       `json:"totals"`
	Checkout  CheckoutGateDTO `json:"checkout"`
}

// CartDTO is the full cart payload.
type CartDTO struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
	Lines  []LineDTO `json:"lines"`
	SummaryDTO
}

// CheckoutResultDTO confirms a completed checkout.
type CheckoutResultDTO struct {
	CartID       uuid.UUID `json:"cart_id"`
	Status       string    `json:"status"`
	Totals       TotalsDTO `json:"totals"`
	CheckedOutAt time.Time `json:"checked_out_at"`
}

// NewTotalsDTO renders a totals breakdown.
func NewTotalsDTO(t Totals) TotalsDTO {
	return TotalsDTO{
		SubtotalCents: int64(t.Subtotal),
		ShippingCents: int64(t.Shipping),
		TaxCents:      int64(t.Tax),
		DiscountCents: int64(t.Discount),
		TotalCents:    int64(t.Total),
		Subtotal:      money.Format(t.Subtotal),
		Shipping:      money.Format(t.Shipping),
		Tax:           money.Format(t.Tax),
		Discount:      money.Format(t.Discount),
		Total:         money.Format(t.Total),
		FreeShipping:  t.Shipping == 0,
	}
}

// NewSummaryDTO prices lines and evaluates the checkout gate.
func NewSummaryDTO(lines []Line, coupon *Coupon) SummaryDTO {
	summary := SummaryDTO{
		ItemCount: ItemCount(lines),
		Totals:    NewTotalsDTO(ComputeTotals(lines, coupon)),
		Checkout:  newCheckoutGateDTO(CheckCheckout(lines)),
	}
	if coupon != nil {
		summary.Coupon = &CouponDTO{
			Code:        coupon.Code,
			Kind:        coupon.Kind.String(),
			Amount:      coupon.Amount,
			Description: coupon.Describe(),
		}
	}
	return summary
}

// NewCartDTO renders a cart record. nav may be nil.
func NewCartDTO(record *models.CartRecord, coupon *Coupon, nav navigation.Navigator) CartDTO {
	lines := LinesFromItems(record.Items)
	dto := CartDTO{
		ID:         record.ID,
		Status:     record.Status.String(),
		Lines:      make([]LineDTO, 0, len(lines)),
		SummaryDTO: NewSummaryDTO(lines, coupon),
	}
	for _, l := range lines {
		row := LineDTO{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Color:          l.Color,
			Size:           l.Size,
			UnitPriceCents: int64(l.UnitPriceCents),
			UnitPrice:      money.Format(l.UnitPriceCents),
			Quantity:       l.Quantity,
			LineTotalCents: int64(l.Subtotal()),
			LineTotal:      money.Format(l.Subtotal()),
			InStock:        l.InStock,
		}
		if nav != nil {
			row.Link = nav.Navigate(navigation.RouteProductSingle, strconv.FormatInt(l.ProductID, 10))
		}
		dto.Lines = append(dto.Lines, row)
	}
	return dto
}

func newCheckoutGateDTO(d CheckoutDecision) CheckoutGateDTO {
	if d.Allowed {
		return CheckoutGateDTO{Allowed: true}
	}
	return CheckoutGateDTO{
		Reason:               d.Reason.String(),
		Message:              d.Reason.Message(),
		OutOfStockProductIDs: d.OutOfStock,
	}
}

// LinesFromItems maps persisted items, in stored order, into engine lines.
func LinesFromItems(items []models.CartItem) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		out = append(out, Line{
			ProductID:      it.ProductID,
			Name:           it.Name,
			Color:          it.Color,
			Size:           it.Size,
			UnitPriceCents: money.Cents(it.UnitPriceCents),
			Quantity:       it.Quantity,
			InStock:        it.InStock,
		})
	}
	return out
}

// ItemsFromLines maps engine lines into rows for persistence.
func ItemsFromLines(cartID uuid.UUID, lines []Line) []models.CartItem {
	out := make([]models.CartItem, 0, len(lines))
	for i, l := range lines {
		out = append(out, models.CartItem{
			CartID:         cartID,
			ProductID:      l.ProductID,
			Position:       i,
			Name:           l.Name,
			Color:          l.Color,
			Size:           l.Size,
			UnitPriceCents: int64(l.UnitPriceCents),
			Quantity:       l.Quantity,
			InStock:        l.InStock,
		})
	}
	return out
}

func couponCode(record *models.CartRecord) string {
	if record.CouponCode == nil {
		return ""
	}
	return *record.CouponCode
}

func isCheckedOut(record *models.CartRecord) bool {
	return record.Status == enums.CartStatusCheckedOut
}
