package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// AddItem inserts a wishlist entry and ignores duplicates.
func (r *Repository) AddItem(ctx context.Context, cartID uuid.UUID, productID int64) error {
	if cartID == uuid.Nil || productID <= 0 {
		return gorm.ErrInvalidValue
	}
	item := models.WishlistItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&item).Error
}

// SaveTx adds an item inside the caller's transaction.
func (r *Repository) SaveTx(ctx context.Context, tx *gorm.DB, cartID uuid.UUID, productID int64) error {
	return r.WithTx(tx).AddItem(ctx, cartID, productID)
}

// RemoveItem deletes the cart-product entry and reports whether one existed.
func (r *Repository) RemoveItem(ctx context.Context, cartID uuid.UUID, productID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.WishlistItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListItems returns a session's wishlist entries, newest first.
func (r *Repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.WishlistItem, error) {
	var rows []models.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at DESC").
		Order("product_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListProducts loads the products referenced by ids.
func (r *Repository) ListProducts(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CartExists reports whether the cart session exists.
func (r *Repository) CartExists(ctx context.Context, cartID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CartRecord{}).
		Where("id = ?", cartID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
