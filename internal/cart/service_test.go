package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/migrate"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

type recordingMetrics struct {
	applied   []string
	rejected  []string
	checkouts []string
}

func (r *recordingMetrics) IncCouponApplied(code string)    { r.applied = append(r.applied, code) }
func (r *recordingMetrics) IncCouponRejected(reason string) { r.rejected = append(r.rejected, reason) }
func (r *recordingMetrics) IncCheckout(outcome string)      { r.checkouts = append(r.checkouts, outcome) }

type testStack struct {
	cart     Service
	wishlist wishlist.Service
	metrics  *recordingMetrics
}

func openTestDB(t *testing.T) *db.Client {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate.Run(context.Background(), sqlDB, "sqlite3", "", "up"))
	return db.Wrap(conn)
}

func newTestStack(t *testing.T) testStack {
	t.Helper()
	ctx := context.Background()
	client := openTestDB(t)
	nav, err := navigation.NewPathNavigator("/")
	require.NoError(t, err)

	catalogSvc, err := catalog.NewService(catalog.ServiceParams{
		Repo:      catalog.NewRepository(client.DB()),
		TxRunner:  client,
		Navigator: nav,
	})
	require.NoError(t, err)
	require.NoError(t, catalogSvc.Seed(ctx))

	wishlistRepo := wishlist.NewRepository(client.DB())
	wishlistSvc, err := wishlist.NewService(wishlist.ServiceParams{
		Repo:      wishlistRepo,
		Products:  catalogSvc,
		Navigator: nav,
	})
	require.NoError(t, err)

	metrics := &recordingMetrics{}
	cartSvc, err := NewService(ServiceParams{
		Repo:      NewRepository(client.DB()),
		TxRunner:  client,
		Products:  catalogSvc,
		Wishlist:  wishlistRepo,
		Navigator: nav,
		Metrics:   metrics,
	})
	require.NoError(t, err)
	require.NoError(t, cartSvc.Seed(ctx))

	return testStack{cart: cartSvc, wishlist: wishlistSvc, metrics: metrics}
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	require.Equal(t, code, typed.Code())
	return typed
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}

func TestCartPricingFlow(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.cart.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", created.Status)
	assert.False(t, created.Checkout.Allowed)
	assert.Equal(t, "empty_cart", created.Checkout.Reason)

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 1, Quantity: 2, Color: "#000000", Size: "L"})
	require.NoError(t, err)
	cart, err := stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 2, Color: "#8b5cf6", Size: "M"})
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "/product-single/1", cart.Lines[0].Link)
	assert.Equal(t, int64(34700), cart.Totals.SubtotalCents)
	assert.Equal(t, int64(0), cart.Totals.ShippingCents)
	assert.Equal(t, "$27.76", cart.Totals.Tax)
	assert.Equal(t, "$374.76", cart.Totals.Total)
	assert.True(t, cart.Checkout.Allowed)
	assert.Equal(t, 3, cart.ItemCount)

	withCoupon, err := stack.cart.ApplyCoupon(ctx, created.ID, "save10")
	require.NoError(t, err)
	require.NotNil(t, withCoupon.Coupon)
	assert.Equal(t, "SAVE10", withCoupon.Coupon.Code)
	assert.Equal(t, int64(3470), withCoupon.Totals.DiscountCents)
	assert.Equal(t, int64(34700+2776-3470), withCoupon.Totals.TotalCents)

	_, err = stack.cart.ApplyCoupon(ctx, created.ID, "SUMMER25")
	typed := requireCode(t, err, pkgerrors.CodeValidation)
	details, ok := typed.Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "already_applied", details["reason"])

	summary, err := stack.cart.Summary(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3470), summary.Totals.DiscountCents)

	removed, err := stack.cart.RemoveCoupon(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, removed.Coupon)
	assert.Equal(t, int64(37476), removed.Totals.TotalCents)

	assert.Equal(t, []string{"SAVE10"}, stack.metrics.applied)
	assert.Equal(t, []string{"already_applied"}, stack.metrics.rejected)
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.cart.Create(ctx)
	require.NoError(t, err)
	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 1})
	require.NoError(t, err)

	_, err = stack.cart.ApplyCoupon(ctx, created.ID, "WELCOME20")
	typed := requireCode(t, err, pkgerrors.CodeValidation)
	assert.Equal(t, "below_minimum", typed.Details().(map[string]any)["reason"])

	_, err = stack.cart.ApplyCoupon(ctx, created.ID, "NOPE")
	typed = requireCode(t, err, pkgerrors.CodeValidation)
	assert.Equal(t, "not_found", typed.Details().(map[string]any)["reason"])
}

func TestLineTransitions(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.cart.Create(ctx)
	require.NoError(t, err)
	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 7})
	require.NoError(t, err)

	cart, err := stack.cart.Increment(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	cart, err = stack.cart.UpdateQuantity(ctx, created.ID, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart, err = stack.cart.Decrement(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	_, err = stack.cart.RemoveItem(ctx, created.ID, 7)
	requireCode(t, err, pkgerrors.CodeNotFound)

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 7, Color: "#ff00ff"})
	requireCode(t, err, pkgerrors.CodeValidation)

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 404})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestCheckoutGateAndWishlistMove(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.cart.Create(ctx)
	require.NoError(t, err)

	_, err = stack.cart.Checkout(ctx, created.ID)
	typed := requireCode(t, err, pkgerrors.CodeStateConflict)
	assert.Equal(t, "empty_cart", typed.Details().(map[string]any)["reason"])

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	cart, err := stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 4, Color: "#92400e", Size: "One Size"})
	require.NoError(t, err)
	assert.False(t, cart.Checkout.Allowed)
	assert.Equal(t, []int64{4}, cart.Checkout.OutOfStockProductIDs)

	_, err = stack.cart.Checkout(ctx, created.ID)
	typed = requireCode(t, err, pkgerrors.CodeStateConflict)
	assert.Equal(t, "out_of_stock", typed.Details().(map[string]any)["reason"])

	cart, err = stack.cart.MoveToWishlist(ctx, created.ID, 4)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	saved, err := stack.wishlist.List(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, saved.Total)
	assert.Equal(t, int64(4), saved.Items[0].Product.ID)

	result, err := stack.cart.Checkout(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "checked_out", result.Status)
	assert.Equal(t, int64(19800+1584), result.Totals.TotalCents)

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 3})
	requireCode(t, err, pkgerrors.CodeStateConflict)

	fetched, err := stack.cart.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "checked_out", fetched.Status)

	assert.Equal(t, []string{"empty_cart", "out_of_stock", "completed"}, stack.metrics.checkouts)
}

func TestUnknownCart(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.cart.Get(context.Background(), uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)

	_, err = stack.cart.Get(context.Background(), uuid.Nil)
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestLineQuantityCeiling(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.cart.Create(ctx)
	require.NoError(t, err)

	full, err := stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 1, Quantity: MaxLineQuantity})
	require.NoError(t, err)
	require.Len(t, full.Lines, 1)
	assert.Equal(t, MaxLineQuantity, full.Lines[0].Quantity)

	_, err = stack.cart.Increment(ctx, created.ID, 1)
	typed := requireCode(t, err, pkgerrors.CodeValidation)
	assert.Equal(t, "quantity_limit", pkgerrors.ReasonOf(typed))

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 1, Quantity: 1})
	requireCode(t, err, pkgerrors.CodeValidation)

	_, err = stack.cart.UpdateQuantity(ctx, created.ID, 1, MaxLineQuantity+1)
	requireCode(t, err, pkgerrors.CodeValidation)

	_, err = stack.cart.AddItem(ctx, created.ID, AddItemInput{ProductID: 2, Quantity: MaxLineQuantity + 1})
	requireCode(t, err, pkgerrors.CodeValidation)

	current, err := stack.cart.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, current.Lines, 1)
	assert.Equal(t, MaxLineQuantity, current.Lines[0].Quantity)

	lowered, err := stack.cart.Decrement(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxLineQuantity-1, lowered.Lines[0].Quantity)
}
