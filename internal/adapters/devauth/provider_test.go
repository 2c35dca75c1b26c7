package devauth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
)

func TestNewProvider_SignIn(t *testing.T) {
	provider, err := NewProvider(Config{
		Name:    "Dev User",
		Email:   "dev@example.com",
		Picture: "http://img/dev.png",
	})
	require.NoError(t, err)

	claims, err := provider.SignIn(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domainauth.Claims{
		Name:    "Dev User",
		Email:   "dev@example.com",
		Picture: "http://img/dev.png",
	}, claims)
}

func TestNewProvider_RequiresCompleteConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing name", Config{Email: "dev@example.com", Picture: "p"}},
		{"missing email", Config{Name: "Dev", Picture: "p"}},
		{"missing picture", Config{Name: "Dev", Email: "dev@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainauth.ErrIncompleteClaims))
		})
	}
}
