package token

import (
	"errors"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	apperrors "github.com/slicelab/storefront/internal/errors"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestDecoder_Decode(t *testing.T) {
	d, err := NewDecoder(DecoderConfig{})
	require.NoError(t, err)

	raw := signToken(t, jwt.MapClaims{
		"name":    "Ana",
		"email":   "ana@x.com",
		"picture": "http://img/a.png",
		"iss":     "https://accounts.example.com",
	})

	claims, err := d.Decode(raw)

	require.NoError(t, err)
	assert.Equal(t, domainauth.Claims{Name: "Ana", Email: "ana@x.com", Picture: "http://img/a.png"}, claims)
}

func TestDecoder_DecodeFailsClosedOnMissingClaims(t *testing.T) {
	d, err := NewDecoder(DecoderConfig{})
	require.NoError(t, err)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"no picture", jwt.MapClaims{"name": "Ana", "email": "ana@x.com"}},
		{"no email", jwt.MapClaims{"name": "Ana", "picture": "p"}},
		{"no name", jwt.MapClaims{"email": "ana@x.com", "picture": "p"}},
		{"non-string email", jwt.MapClaims{"name": "Ana", "email": 42, "picture": "p"}},
		{"empty payload", jwt.MapClaims{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, decodeErr := d.Decode(signToken(t, tt.claims))
			assert.True(t, errors.Is(decodeErr, domainauth.ErrIncompleteClaims),
				"expected fail-closed, got %v", decodeErr)
		})
	}
}

func TestDecoder_DecodeRejectsGarbage(t *testing.T) {
	d, err := NewDecoder(DecoderConfig{})
	require.NoError(t, err)

	_, decodeErr := d.Decode("not-a-jwt")

	require.Error(t, decodeErr)
	assert.True(t, apperrors.IsMalformed(decodeErr))
}

func TestDecoder_CustomExpressions(t *testing.T) {
	d, err := NewDecoder(DecoderConfig{
		NameExpr:    "profile.display_name",
		EmailExpr:   "contact.mail",
		PictureExpr: "profile.avatar",
	})
	require.NoError(t, err)

	raw := signToken(t, jwt.MapClaims{
		"profile": map[string]any{"display_name": "Ana", "avatar": "http://img/a.png"},
		"contact": map[string]any{"mail": "ana@x.com"},
	})

	claims, err := d.Decode(raw)

	require.NoError(t, err)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@x.com", claims.Email)
}

func TestNewDecoder_RejectsInvalidExpression(t *testing.T) {
	_, err := NewDecoder(DecoderConfig{NameExpr: "profile[."})
	require.Error(t, err)
}
