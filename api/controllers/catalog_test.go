package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/money"
)

type stubCatalogService struct {
	lastParams catalog.QueryParams
	listCalls  int
	detailID   int64
	detailErr  error
}

func (s *stubCatalogService) List(_ context.Context, params catalog.QueryParams) (*catalog.ProductListDTO, error) {
	s.listCalls++
	s.lastParams = params
	return &catalog.ProductListDTO{}, nil
}

func (s *stubCatalogService) Detail(_ context.Context, id int64) (*catalog.ProductDetailDTO, error) {
	s.detailID = id
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return &catalog.ProductDetailDTO{}, nil
}

func (s *stubCatalogService) Facets(context.Context) (*catalog.FacetsDTO, error) {
	return &catalog.FacetsDTO{}, nil
}

func (s *stubCatalogService) Lookup(context.Context, int64) (*catalog.Product, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *stubCatalogService) Seed(context.Context) error { return nil }

func TestCatalogListParsesQuery(t *testing.T) {
	svc := &stubCatalogService{}
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/products?q=+Denim+&category=Men&price_min=5000&price_max=20000&colors=%23000000,%23ffffff&sizes=M&sizes=L&sort=price-high&page=2&page_size=4", nil)
	rec := httptest.NewRecorder()

	CatalogList(svc, 8, 48, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := svc.lastParams
	want := catalog.QueryParams{
		SearchTerm:    "Denim",
		Category:      enums.ProductCategoryMen,
		PriceMinCents: money.Cents(5000),
		PriceMaxCents: money.Cents(20000),
		Colors:        []string{"#000000", "#ffffff"},
		Sizes:         []string{"M", "L"},
		Sort:          enums.SortPriceHigh,
		Page:          2,
		PageSize:      4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected params\n got %+v\nwant %+v", got, want)
	}
}

func TestCatalogListDefaults(t *testing.T) {
	svc := &stubCatalogService{}
	rec := httptest.NewRecorder()
	CatalogList(svc, 12, 48, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := svc.lastParams
	if got.Category != enums.ProductCategoryAll || got.Sort != enums.SortFeatured {
		t.Fatalf("unexpected defaults %+v", got)
	}
	if got.PriceMinCents != 0 || got.PriceMaxCents != catalog.DefaultPriceMaxCents {
		t.Fatalf("unexpected price defaults %+v", got)
	}
	if got.Page != 1 || got.PageSize != 12 {
		t.Fatalf("unexpected paging defaults page=%d size=%d", got.Page, got.PageSize)
	}
}

func TestCatalogListRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"category":       "/api/v1/products?category=pets",
		"sort":           "/api/v1/products?sort=cheapest",
		"price range":    "/api/v1/products?price_min=9000&price_max=100",
		"negative price": "/api/v1/products?price_min=-5",
		"page size":      "/api/v1/products?page_size=100",
		"page":           "/api/v1/products?page=0",
	}
	for name, target := range cases {
		svc := &stubCatalogService{}
		rec := httptest.NewRecorder()
		CatalogList(svc, 8, 48, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
		if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != string(pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error envelope, got %s", name, rec.Body.String())
		}
		if svc.listCalls != 0 {
			t.Fatalf("%s: service must not be called on invalid input", name)
		}
	}
}

func TestCatalogDetail(t *testing.T) {
	svc := &stubCatalogService{}
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil), "productId", "3")
	rec := httptest.NewRecorder()
	CatalogDetail(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || svc.detailID != 3 {
		t.Fatalf("expected detail for product 3, got status %d id %d", rec.Code, svc.detailID)
	}

	svc.detailErr = pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	req = withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil), "productId", "99")
	rec = httptest.NewRecorder()
	CatalogDetail(svc, nil).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil), "productId", "abc")
	rec = httptest.NewRecorder()
	CatalogDetail(svc, nil).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCatalogNilService(t *testing.T) {
	rec := httptest.NewRecorder()
	CatalogFacets(nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/facets", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
