package service

import (
	"context"
	"fmt"

	"github.com/slicelab/storefront/internal/domain/catalog"
	"github.com/slicelab/storefront/internal/ports"
	"github.com/slicelab/storefront/internal/util"
)

// CatalogService wraps the stateless catalog read and the price sanitization
// that must happen before a product can cross the add-to-cart boundary.
type CatalogService struct {
	backend ports.CatalogBackend
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(backend ports.CatalogBackend) *CatalogService {
	return &CatalogService{backend: backend}
}

// List fetches the storefront catalog.
func (s *CatalogService) List(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return products, nil
}

// UnitPrice parses a product's display price into the non-negative amount
// the cart backend expects, with any currency symbol stripped.
func (s *CatalogService) UnitPrice(p catalog.Product) (float64, error) {
	v, err := util.ParsePrice(p.Price)
	if err != nil {
		return 0, fmt.Errorf("product %q: %w", p.Name, err)
	}
	return v, nil
}
