// Package testutil provides testing utilities and helpers for the storefront client.
package testutil

import (
	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/domain/cart"
	"github.com/slicelab/storefront/internal/domain/catalog"
)

// IdentityBuilder provides a fluent interface for building Identity values for testing.
type IdentityBuilder struct {
	id domainauth.Identity
}

// NewIdentity creates a new IdentityBuilder with sensible defaults.
func NewIdentity() *IdentityBuilder {
	return &IdentityBuilder{
		id: domainauth.Identity{
			Username:       "Test User",
			Email:          "test.user@example.com",
			ProfilePicture: "https://example.com/avatar.png",
		},
	}
}

// WithUsername sets the display name.
func (b *IdentityBuilder) WithUsername(name string) *IdentityBuilder {
	b.id.Username = name
	return b
}

// WithEmail sets the email address.
func (b *IdentityBuilder) WithEmail(email string) *IdentityBuilder {
	b.id.Email = email
	return b
}

// WithProfilePicture sets the avatar URL.
func (b *IdentityBuilder) WithProfilePicture(url string) *IdentityBuilder {
	b.id.ProfilePicture = url
	return b
}

// Build returns the constructed Identity.
func (b *IdentityBuilder) Build() domainauth.Identity {
	return b.id
}

// Claims returns the identity as provider claims, for sign-in tests.
func (b *IdentityBuilder) Claims() domainauth.Claims {
	return domainauth.Claims{
		Name:    b.id.Username,
		Email:   b.id.Email,
		Picture: b.id.ProfilePicture,
	}
}

// LineBuilder provides a fluent interface for building cart lines for testing.
type LineBuilder struct {
	line cart.Line
}

// NewLine creates a new LineBuilder with sensible defaults.
func NewLine() *LineBuilder {
	return &LineBuilder{
		line: cart.Line{
			ID:        1,
			ItemName:  "Margherita",
			UnitPrice: 9.00,
			Quantity:  1,
		},
	}
}

// WithID sets the line id.
func (b *LineBuilder) WithID(id int) *LineBuilder {
	b.line.ID = id
	return b
}

// WithItemName sets the item name.
func (b *LineBuilder) WithItemName(name string) *LineBuilder {
	b.line.ItemName = name
	return b
}

// WithUnitPrice sets the unit price.
func (b *LineBuilder) WithUnitPrice(price float64) *LineBuilder {
	b.line.UnitPrice = price
	return b
}

// WithQuantity sets the quantity.
func (b *LineBuilder) WithQuantity(qty int) *LineBuilder {
	b.line.Quantity = qty
	return b
}

// Build returns the constructed line.
func (b *LineBuilder) Build() cart.Line {
	return b.line
}

// NewProduct creates a catalog product with display-formatted price, the shape
// the catalog endpoint serves.
func NewProduct(id int, name, price string) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Image: "https://example.com/" + name + ".png",
	}
}
