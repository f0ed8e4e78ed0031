package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/money"
)

func TestReplaceItemsKeepsOutOfStockLines(t *testing.T) {
	client := openTestDB(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	record, err := repo.Create(ctx, &models.CartRecord{})
	require.NoError(t, err)

	lines := []Line{
		{ProductID: 1, Name: "Classic Cotton T-Shirt", UnitPriceCents: money.FromDollars(49), Quantity: 1, InStock: true},
		{ProductID: 4, Name: "Leather Crossbody Bag", UnitPriceCents: money.FromDollars(199), Quantity: 1, InStock: false},
	}
	require.NoError(t, repo.ReplaceItems(ctx, record.ID, ItemsFromLines(record.ID, lines)))

	loaded, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	reloaded := LinesFromItems(loaded.Items)
	require.Len(t, reloaded, 2)
	assert.True(t, reloaded[0].InStock)
	assert.False(t, reloaded[1].InStock, "an out of stock line must not be stored with the column default")

	decision := CheckCheckout(reloaded)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []int64{4}, decision.OutOfStock)
}

func TestLockForUpdate(t *testing.T) {
	client := openTestDB(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	record, err := repo.Create(ctx, &models.CartRecord{})
	require.NoError(t, err)

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		return repo.WithTx(tx).LockForUpdate(ctx, record.ID)
	})
	require.NoError(t, err)

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		return repo.WithTx(tx).LockForUpdate(ctx, uuid.New())
	})
	assert.True(t, db.IsNotFound(err))
}
