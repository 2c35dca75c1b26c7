package ports

import (
	"context"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/domain/cart"
	"github.com/slicelab/storefront/internal/domain/catalog"
)

// UserRegistrar mirrors a locally established identity to the backend.
// Registration is best effort: callers never await its outcome for
// correctness and only log failures.
type UserRegistrar interface {
	Register(ctx context.Context, id domainauth.Identity) error
}

// AddItemInput groups parameters for an add-to-cart request.
type AddItemInput struct {
	Email     string
	ItemName  string
	UnitPrice float64
	Quantity  int
}

// RemoveInput groups parameters for a remove-from-cart request.
type RemoveInput struct {
	LineID int
	Email  string
	Amount int
}

// CartBackend is the remote cart store, the source of truth the local cart
// view reconciles against.
type CartBackend interface {
	FetchCart(ctx context.Context, email string) ([]cart.Line, error)
	AddItem(ctx context.Context, in AddItemInput) error
	RemoveQuantity(ctx context.Context, in RemoveInput) error
}

// CatalogBackend lists the storefront catalog. A stateless read.
type CatalogBackend interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}
