package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

const (
	maxSearchTermLength = 100
	maxPage             = 1 << 20
)

// CatalogList serves the filtered, sorted and paginated product grid.
func CatalogList(svc catalog.Service, defaultPageSize, maxPageSize int, logg *logger.Logger) http.HandlerFunc {
	if maxPageSize <= 0 {
		maxPageSize = pagination.MaxPageSize
	}
	if defaultPageSize <= 0 {
		defaultPageSize = pagination.DefaultPageSize
	}
	if defaultPageSize > maxPageSize {
		defaultPageSize = maxPageSize
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := parseQueryParams(r, defaultPageSize, maxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// CatalogFacets serves category counts, colors, sizes and the price range.
func CatalogFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		facets, err := svc.Facets(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, facets)
	}
}

// CatalogDetail serves the single product page with reviews.
func CatalogDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		id, err := validators.ParsePathInt64(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		detail, err := svc.Detail(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// parseQueryParams reads the catalog query string. Prices are in cents.
func parseQueryParams(r *http.Request, defaultPageSize, maxPageSize int) (catalog.QueryParams, error) {
	params := catalog.DefaultQueryParams()
	query := r.URL.Query()

	params.SearchTerm = validators.SanitizeString(query.Get("q"), maxSearchTermLength)

	category, err := enums.ParseProductCategory(query.Get("category"))
	if err != nil {
		return params, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
			WithDetails(map[string]any{"field": "category", "allowed": enums.ProductCategories()})
	}
	params.Category = category

	sortKey, err := enums.ParseSortKey(query.Get("sort"))
	if err != nil {
		return params, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort").
			WithDetails(map[string]any{"field": "sort", "allowed": enums.SortKeys()})
	}
	params.Sort = sortKey

	priceMin, err := validators.ParseQueryInt64(r, "price_min", 0)
	if err != nil {
		return params, err
	}
	priceMax, err := validators.ParseQueryInt64(r, "price_max", int64(catalog.DefaultPriceMaxCents))
	if err != nil {
		return params, err
	}
	if priceMin > priceMax {
		return params, pkgerrors.New(pkgerrors.CodeValidation, "price_min must not exceed price_max").
			WithDetails(map[string]any{"price_min": priceMin, "price_max": priceMax})
	}
	params.PriceMinCents = money.Cents(priceMin)
	params.PriceMaxCents = money.Cents(priceMax)

	params.Colors = validators.ParseQueryList(r, "colors")
	params.Sizes = validators.ParseQueryList(r, "sizes")

	if params.Page, err = validators.ParseQueryInt(r, "page", pagination.DefaultPage, 1, maxPage); err != nil {
		return params, err
	}
	if params.PageSize, err = validators.ParseQueryInt(r, "page_size", defaultPageSize, 1, maxPageSize); err != nil {
		return params, err
	}
	return params, nil
}
