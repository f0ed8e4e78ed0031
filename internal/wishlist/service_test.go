package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/migrate"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

func newTestService(t *testing.T) (Service, *Repository, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migrate.Run(ctx, sqlDB, "sqlite3", "", "up"))
	client := db.Wrap(conn)

	nav, err := navigation.NewPathNavigator("https://shop.example.com")
	require.NoError(t, err)
	products, err := catalog.NewService(catalog.ServiceParams{
		Repo:      catalog.NewRepository(client.DB()),
		TxRunner:  client,
		Navigator: nav,
	})
	require.NoError(t, err)
	require.NoError(t, products.Seed(ctx))

	cartID := uuid.New()
	require.NoError(t, conn.Create(&models.CartRecord{ID: cartID, Status: enums.CartStatusActive}).Error)

	repo := NewRepository(client.DB())
	svc, err := NewService(ServiceParams{Repo: repo, Products: products, Navigator: nav})
	require.NoError(t, err)
	return svc, repo, cartID
}

func TestWishlistAddListRemove(t *testing.T) {
	svc, _, cartID := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, cartID, 3))
	require.NoError(t, svc.Add(ctx, cartID, 5))
	require.NoError(t, svc.Add(ctx, cartID, 3))

	list, err := svc.List(ctx, cartID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	ids := []int64{list.Items[0].Product.ID, list.Items[1].Product.ID}
	assert.ElementsMatch(t, []int64{3, 5}, ids)
	for _, item := range list.Items {
		assert.Contains(t, item.Product.Link, "https://shop.example.com/product-single/")
	}

	require.NoError(t, svc.Remove(ctx, cartID, 3))
	err = svc.Remove(ctx, cartID, 3)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	list, err = svc.List(ctx, cartID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, int64(5), list.Items[0].Product.ID)
}

func TestWishlistSaveTxIsIdempotent(t *testing.T) {
	_, repo, cartID := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTx(ctx, nil, cartID, 4))
	require.NoError(t, repo.SaveTx(ctx, nil, cartID, 4))

	items, err := repo.ListItems(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestWishlistErrors(t *testing.T) {
	svc, _, cartID := newTestService(t)
	ctx := context.Background()

	err := svc.Add(ctx, uuid.Nil, 1)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	err = svc.Add(ctx, uuid.New(), 1)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	err = svc.Add(ctx, cartID, 999)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.List(ctx, uuid.New())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}
