package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	Create(ctx context.Context, record *models.CartRecord) (*models.CartRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CartRecord, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
	UpdateState(ctx context.Context, record *models.CartRecord) error
	ReplaceItems(ctx context.Context, cartID uuid.UUID, items []models.CartItem) error
	FindCoupon(ctx context.Context, code string) (*models.Coupon, error)
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	InsertCoupons(ctx context.Context, coupons []models.Coupon) error
}
