// Package ports defines interfaces (hexagonal ports) for the storefront
// client core. Implementations live in internal/adapters; orchestration in
// internal/service.
package ports

import (
	"context"
	"errors"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
)

// ErrSignInCanceled reports that the user abandoned the provider exchange.
// It is an outcome, not a failure: the session simply stays anonymous.
var ErrSignInCanceled = errors.New("sign-in canceled")

// AuthProvider runs the external identity-provider exchange and yields the
// decoded token claims. The exchange suspends the caller until the provider
// reports success, cancellation (ErrSignInCanceled), or failure.
type AuthProvider interface {
	SignIn(ctx context.Context) (domainauth.Claims, error)
}

// IdentityStore persists exactly one Identity under a fixed key in durable
// local storage. Load returns ErrNotFound when nothing is stored; malformed
// stored data is reported as an error distinct from absence so callers can
// log it, but is equally treated as "no identity".
type IdentityStore interface {
	Save(ctx context.Context, id domainauth.Identity) error
	Load(ctx context.Context) (domainauth.Identity, error)
	Delete(ctx context.Context) error
}

// ErrNotFound is returned when no identity is stored.
type notFoundError struct{}

func (notFoundError) Error() string { return "identity not found" }

var ErrNotFound error = notFoundError{}
