package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC with a loopback redirect for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeToken decodes a pre-issued identity token supplied via env.
	AuthModeToken AuthMode = "token"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "token", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, token, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	ListenAddr   string `env:"LISTEN_ADDR"   envDefault:"127.0.0.1:0"`
}

// TokenConfig controls identity extraction from a pre-issued token.
// The claim expressions are JMESPath queries against the token payload,
// so nested or renamed claims can be mapped without code changes.
type TokenConfig struct {
	Raw         string `env:"RAW"`
	NameExpr    string `env:"NAME_EXPR"    envDefault:"name"`
	EmailExpr   string `env:"EMAIL_EXPR"   envDefault:"email"`
	PictureExpr string `env:"PICTURE_EXPR" envDefault:"picture"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Name    string `env:"NAME"    envDefault:"Dev User"`
	Email   string `env:"EMAIL"   envDefault:"dev@example.com"`
	Picture string `env:"PICTURE" envDefault:"https://example.com/dev.png"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// Token configuration (used when Mode=token).
	Token TokenConfig `envPrefix:"AUTH_TOKEN_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}
