package catalog

import (
	"context"
	"time"

	"github.com/sagarmatha/storefront/pkg/enums"
	pkgerrors "github.com/sagarmatha/storefront/pkg/errors"
	"github.com/sagarmatha/storefront/pkg/logger"
	"github.com/sagarmatha/storefront/pkg/metrics"
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Source  Source
	Logger  *logger.Logger
	Metrics *metrics.CatalogMetrics
}

// Service is the read surface the pages call on every render: filtered and
// sorted views plus the facet metadata driving the filter controls. It
// holds the collection loaded at startup and is safe for concurrent use
// because every operation works on copies of immutable data.
type Service interface {
	Query(ctx context.Context, spec FilterSpec, key enums.SortKey) ([]Product, error)
	Facets(ctx context.Context) Facets
	Products() []Product
	FindByID(id int) (Product, error)
}

type service struct {
	products []Product
	facets   Facets
	logg     *logger.Logger
	metrics  *metrics.CatalogMetrics
}

// NewService loads the collection from the source and precomputes facets.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Source == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog source is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}

	products, err := Load(ctx, params.Source, params.Logger)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}

	return &service{
		products: products,
		facets:   ComputeFacets(products),
		logg:     params.Logger,
		metrics:  params.Metrics,
	}, nil
}

// Query applies the filter spec and sort key to the full collection.
func (s *service) Query(ctx context.Context, spec FilterSpec, key enums.SortKey) ([]Product, error) {
	if key != "" && !key.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort key").WithDetails(key.String())
	}
	if key == "" {
		key = enums.SortKeyFeatured
	}

	start := time.Now()
	result := SortProducts(FilterProducts(s.products, spec), key)
	s.metrics.ObserveQuery(key.String(), time.Since(start), len(result))

	s.logg.Debug(s.logg.WithFields(ctx, map[string]any{
		"sort":    key.String(),
		"matched": len(result),
		"total":   len(s.products),
	}), "catalog query")
	return result, nil
}

// Facets returns the precomputed filter metadata.
func (s *service) Facets(_ context.Context) Facets {
	return s.facets
}

// Products returns a copy of the full collection in insertion order.
func (s *service) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindByID looks a product up by identity.
func (s *service) FindByID(id int) (Product, error) {
	for _, product := range s.products {
		if product.ID == id {
			return product, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(id)
}
