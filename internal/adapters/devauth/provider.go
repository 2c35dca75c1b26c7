// Package devauth provides a simple, config-driven AuthProvider for local
// development. It short-circuits the provider exchange and returns the
// configured claims immediately.
package devauth

import (
	"context"
	"errors"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/ports"
)

// Config controls the dev auth provider behavior. All fields are required;
// the same fail-closed rule applies to configured claims as to real tokens.
type Config struct {
	Name    string
	Email   string
	Picture string
}

// Provider implements ports.AuthProvider for local development.
type Provider struct {
	claims domainauth.Claims
}

var _ ports.AuthProvider = (*Provider)(nil)

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	claims := domainauth.Claims{
		Name:    cfg.Name,
		Email:   cfg.Email,
		Picture: cfg.Picture,
	}
	if err := claims.Validate(); err != nil {
		return nil, errors.Join(errors.New("dev auth: incomplete identity config"), err)
	}
	return &Provider{claims: claims}, nil
}

// SignIn returns the configured claims without any external exchange.
func (p *Provider) SignIn(_ context.Context) (domainauth.Claims, error) {
	return p.claims, nil
}
