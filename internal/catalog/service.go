package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

// Service exposes catalog browsing operations.
type Service interface {
	List(ctx context.Context, params QueryParams) (*ProductListDTO, error)
	Detail(ctx context.Context, id int64) (*ProductDetailDTO, error)
	Facets(ctx context.Context) (*FacetsDTO, error)
	Lookup(ctx context.Context, id int64) (*Product, error)
	Seed(ctx context.Context) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type queryObserver interface {
	ObserveCatalogQuery(sort string, matched int)
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo        *Repository
	TxRunner    txRunner
	Navigator   navigation.Navigator
	Metrics     queryObserver
	MaxPageSize int
}

type service struct {
	repo        *Repository
	tx          txRunner
	nav         navigation.Navigator
	metrics     queryObserver
	maxPageSize int
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tx runner is required")
	}
	if params.Navigator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "navigator is required")
	}
	maxPageSize := params.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = pagination.MaxPageSize
	}
	return &service{
		repo:        params.Repo,
		tx:          params.TxRunner,
		nav:         params.Navigator,
		metrics:     params.Metrics,
		maxPageSize: maxPageSize,
	}, nil
}

// List runs the query engine over the stored catalog.
func (s *service) List(ctx context.Context, params QueryParams) (*ProductListDTO, error) {
	if params.Sort == "" {
		params.Sort = enums.SortFeatured
	}
	if params.PageSize > s.maxPageSize {
		params.PageSize = s.maxPageSize
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := Query(products, params)
	if s.metrics != nil {
		s.metrics.ObserveCatalogQuery(params.Sort.String(), result.TotalMatched)
	}

	dto := NewProductListDTO(result, s.nav)
	return &dto, nil
}

// Detail returns the single product view including reviews.
func (s *service) Detail(ctx context.Context, id int64) (*ProductDetailDTO, error) {
	row, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews := make([]Review, 0, len(row.Reviews))
	for _, r := range row.Reviews {
		reviews = append(reviews, ReviewFromModel(r))
	}

	dto := NewProductDetailDTO(FromModel(*row), reviews, s.nav)
	return &dto, nil
}

// Facets summarises the whole catalog for the filter sidebar.
func (s *service) Facets(ctx context.Context) (*FacetsDTO, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	dto := NewFacetsDTO(BuildFacets(products))
	return &dto, nil
}

// Lookup returns a single product without its reviews.
func (s *service) Lookup(ctx context.Context, id int64) (*Product, error) {
	row, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product := FromModel(*row)
	return &product, nil
}

// Seed stores the fixture catalog and its reviews. Existing rows are left untouched.
func (s *service) Seed(ctx context.Context) error {
	fixtures := Fixtures()
	productRows := make([]models.Product, 0, len(fixtures))
	for _, p := range fixtures {
		productRows = append(productRows, p.ToModel())
	}

	reviews := FixtureReviews()
	reviewRows := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		reviewRows = append(reviewRows, r.ToModel())
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.InsertProducts(ctx, productRows); err != nil {
			return err
		}
		return repo.InsertReviews(ctx, reviewRows)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed catalog")
	}
	return nil
}

func (s *service) loadProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, FromModel(row))
	}
	return products, nil
}

func (s *service) findProduct(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return row, nil
}
