package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

type recordingObserver struct {
	sorts   []string
	matches []int
}

func (r *recordingObserver) ObserveCatalogQuery(sort string, matched int) {
	r.sorts = append(r.sorts, sort)
	r.matches = append(r.matches, matched)
}

func newSeededService(t *testing.T, observer queryObserver) Service {
	t.Helper()
	client := openTestDB(t)
	nav, err := navigation.NewPathNavigator("/")
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{
		Repo:        NewRepository(client.DB()),
		TxRunner:    client,
		Navigator:   nav,
		Metrics:     observer,
		MaxPageSize: 4,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Seed(context.Background()))
	return svc
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSeedIsIdempotent(t *testing.T) {
	client := openTestDB(t)
	repo := NewRepository(client.DB())
	svc, err := NewService(ServiceParams{Repo: repo, TxRunner: client, Navigator: navigation.Func(func(navigation.Route, string) string { return "" })})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 8, count)
}

func TestServiceListAppliesQueryAndCapsPageSize(t *testing.T) {
	observer := &recordingObserver{}
	svc := newSeededService(t, observer)

	params := DefaultQueryParams()
	params.PageSize = 20
	params.Sort = enums.SortPriceHigh

	page, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	assert.Equal(t, 4, page.Pagination.PageSize)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, int64(6), page.Items[0].ID)
	assert.Equal(t, "$299.00", page.Items[0].Price)
	assert.Equal(t, "/product-single/6", page.Items[0].Link)

	assert.Equal(t, []string{"price-high"}, observer.sorts)
	assert.Equal(t, []int{8}, observer.matches)
}

func TestServiceListDefaultsSortForMetrics(t *testing.T) {
	observer := &recordingObserver{}
	svc := newSeededService(t, observer)

	_, err := svc.List(context.Background(), QueryParams{PriceMaxCents: DefaultPriceMaxCents})
	require.NoError(t, err)
	assert.Equal(t, []string{"featured"}, observer.sorts)
}

func TestServiceDetail(t *testing.T) {
	svc := newSeededService(t, nil)

	detail, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Premium Cotton T-Shirt", detail.Name)
	assert.Equal(t, 47, detail.StockCount)
	require.Len(t, detail.Reviews, 3)
	assert.Equal(t, "John D.", detail.Reviews[0].Author)
	assert.Equal(t, 4, detail.FilledStars)
	require.Len(t, detail.RatingDistribution, 5)
	assert.Equal(t, 2, detail.RatingDistribution[0].Count)
	require.NotNil(t, detail.CompareAtPrice)
	assert.Equal(t, "$129.00", *detail.CompareAtPrice)
}

func TestServiceDetailErrors(t *testing.T) {
	svc := newSeededService(t, nil)

	_, err := svc.Detail(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.Detail(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestServiceLookupAndFacets(t *testing.T) {
	svc := newSeededService(t, nil)
	ctx := context.Background()

	product, err := svc.Lookup(ctx, 4)
	require.NoError(t, err)
	assert.False(t, product.InStock)
	require.NotNil(t, product.Badge)
	assert.Equal(t, enums.BadgeTypeHot, product.Badge.Type)

	facets, err := svc.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$79.00 - $299.00", facets.PriceRange)
	assert.Equal(t, 8, facets.Categories[0].Count)
}
