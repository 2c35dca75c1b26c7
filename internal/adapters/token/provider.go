package token

import (
	"context"
	"errors"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/ports"
)

// Provider implements ports.AuthProvider for a pre-issued identity token,
// for scripting and tests where the interactive browser flow is unavailable.
// The token is decoded on every SignIn so claims are never cached stale.
type Provider struct {
	decoder *Decoder
	raw     string
}

var _ ports.AuthProvider = (*Provider)(nil)

// NewProvider constructs a static-token provider.
func NewProvider(decoder *Decoder, rawToken string) (*Provider, error) {
	if decoder == nil {
		return nil, errors.New("token decoder is required")
	}
	if rawToken == "" {
		return nil, errors.New("identity token is required")
	}
	return &Provider{decoder: decoder, raw: rawToken}, nil
}

// SignIn decodes the configured token into identity claims.
func (p *Provider) SignIn(_ context.Context) (domainauth.Claims, error) {
	return p.decoder.Decode(p.raw)
}
