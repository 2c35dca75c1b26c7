// Package mocks provides generated mock implementations for testing the cart
// and catalog backends.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the backend port interfaces. Hand-written doubles for the auth ports live
// in the auth subpackage; the backend ports have enough call-shape variety
// that expectation-based mocks pay off.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	backend := mocks.NewMockCartBackend(ctrl)
//	backend.EXPECT().FetchCart(gomock.Any(), "ana@x.com").Return(lines, nil)
package mocks

// Generate mock for CartBackend interface from internal/ports.
// This creates MockCartBackend with methods for all CartBackend interface methods:
// FetchCart, AddItem, RemoveQuantity
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cart_backend_mock.go github.com/slicelab/storefront/internal/ports CartBackend

// Generate mock for CatalogBackend interface from internal/ports.
// This creates MockCatalogBackend with methods for all CatalogBackend interface methods:
// ListProducts
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_backend_mock.go github.com/slicelab/storefront/internal/ports CatalogBackend
