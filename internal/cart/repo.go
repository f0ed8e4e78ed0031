package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// Repository exposes persistence operations for cart sessions and coupons.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new CartRecord.
func (r *Repository) Create(ctx context.Context, record *models.CartRecord) (*models.CartRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = enums.CartStatusActive
	}
	if err := r.db.WithContext(ctx).Omit("Items").Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID loads a CartRecord with its items in cart order.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CartRecord, error) {
	var record models.CartRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// LockForUpdate takes a row lock on the cart for the rest of the transaction so
// concurrent mutations of one session serialize. SQLite ignores the clause; its single
// writer already serializes transactions.
func (r *Repository) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	var locked models.CartRecord
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Take(&locked).Error
}

// UpdateState persists status, coupon and checkout timestamp. Items are untouched.
func (r *Repository) UpdateState(ctx context.Context, record *models.CartRecord) error {
	return r.db.WithContext(ctx).
		Model(&models.CartRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"status":         record.Status,
			"coupon_code":    record.CouponCode,
			"checked_out_at": record.CheckedOutAt,
			"updated_at":     time.Now().UTC(),
		}).Error
}

// ReplaceItems atomically replaces cart items for the provided cart.
func (r *Repository) ReplaceItems(ctx context.Context, cartID uuid.UUID, items []models.CartItem) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].CartID = cartID
		items[i].Position = i
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return tx.Create(&items).Error
}

// FindCoupon loads a coupon by its normalized code.
func (r *Repository) FindCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.WithContext(ctx).Where("code = ?", NormalizeCode(code)).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

// ListCoupons returns every known coupon.
func (r *Repository) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var rows []models.Coupon
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// InsertCoupons stores coupons, leaving existing codes untouched.
func (r *Repository) InsertCoupons(ctx context.Context, coupons []models.Coupon) error {
	if len(coupons) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&coupons).Error
}
