// Package token decodes a provider-issued identity token into claims. The
// token arrives over the already-authenticated provider channel, so the
// decoder parses without re-verifying the signature, exactly like the
// surrounding exchange does. Claim locations are JMESPath expressions so a
// different provider's claim layout only needs configuration, not code.
package token

import (
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	apperrors "github.com/slicelab/storefront/internal/errors"
)

const (
	defaultNameExpr    = "name"
	defaultEmailExpr   = "email"
	defaultPictureExpr = "picture"
)

// DecoderConfig holds the claim-extraction expressions. Empty fields fall
// back to the standard OIDC claim names.
type DecoderConfig struct {
	NameExpr    string
	EmailExpr   string
	PictureExpr string
}

// Decoder extracts identity claims from a raw JWT.
type Decoder struct {
	nameExpr    string
	emailExpr   string
	pictureExpr string
}

// NewDecoder constructs a Decoder, validating the configured expressions.
func NewDecoder(cfg DecoderConfig) (*Decoder, error) {
	d := &Decoder{
		nameExpr:    orDefault(cfg.NameExpr, defaultNameExpr),
		emailExpr:   orDefault(cfg.EmailExpr, defaultEmailExpr),
		pictureExpr: orDefault(cfg.PictureExpr, defaultPictureExpr),
	}
	for _, expr := range []string{d.nameExpr, d.emailExpr, d.pictureExpr} {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("invalid claim expression %q: %w", expr, err)
		}
	}
	return d, nil
}

// Decode parses the raw token and maps its payload to identity claims.
// Missing or non-string claim values fail closed: the caller gets an error,
// never a partially populated Claims.
func (d *Decoder) Decode(raw string) (domainauth.Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return domainauth.Claims{}, apperrors.Wrap(err, apperrors.ErrCodeMalformed, "parse identity token")
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domainauth.Claims{}, apperrors.Malformed("identity token has no claim payload")
	}

	claims := domainauth.Claims{
		Name:    stringClaim(d.nameExpr, map[string]any(payload)),
		Email:   stringClaim(d.emailExpr, map[string]any(payload)),
		Picture: stringClaim(d.pictureExpr, map[string]any(payload)),
	}
	if validateErr := claims.Validate(); validateErr != nil {
		return domainauth.Claims{}, validateErr
	}
	return claims, nil
}

// stringClaim evaluates one expression against the payload, collapsing
// evaluation errors and non-string results to absence.
func stringClaim(expr string, payload map[string]any) string {
	v, err := jmespath.Search(expr, payload)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
