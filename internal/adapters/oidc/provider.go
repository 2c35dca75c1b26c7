// Package oidc implements the interactive identity-provider exchange using
// OIDC/OAuth2 with a loopback redirect listener: the user's browser carries
// the authorization flow while SignIn suspends until the provider redirects
// back with a code or the user abandons the flow.
package oidc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/ports"
)

// Provider implements ports.AuthProvider using OIDC/OAuth2.
type Provider struct {
	config     *oauth2.Config
	listenAddr string
	httpClient *http.Client

	// OnAuthURL receives the provider authorization URL once the loopback
	// listener is up; the default prints nothing, so CLI wiring supplies
	// one that shows the URL to the user.
	OnAuthURL func(authURL string)

	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

var _ ports.AuthProvider = (*Provider)(nil)

// ProviderConfig holds configuration for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	Scope        string
	DiscoveryURL string
	ListenAddr   string       // loopback address for the redirect listener, defaults to 127.0.0.1:0
	HTTPClient   *http.Client // Optional, defaults to a client with a 30s timeout
}

// NewProvider creates a new OIDC provider. Discovery runs once here.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	listenAddr := cfg.ListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	p := &Provider{
		listenAddr: listenAddr,
		httpClient: httpClient,
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}
	p.oidcProvider = op
	p.verifier = op.Verifier(&gooidc.Config{ClientID: cfg.ClientID})

	scope := cfg.Scope
	if scope == "" {
		scope = "openid profile email"
	}
	p.config = &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       strings.Fields(scope),
		Endpoint:     op.Endpoint(),
	}

	return p, nil
}

// callbackResult is what the loopback handler hands back to SignIn.
type callbackResult struct {
	code     string
	state    string
	denied   bool
	errParam string
}

// SignIn runs the full interactive exchange and returns the decoded identity
// claims. A user who denies consent or closes the browser yields
// ports.ErrSignInCanceled; provider failures yield ordinary errors. Claims
// missing any required field fail closed.
func (p *Provider) SignIn(ctx context.Context) (domainauth.Claims, error) {
	state, err := generateRandomString(32)
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("generate state: %w", err)
	}
	nonce, err := generateRandomString(32)
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("generate nonce: %w", err)
	}

	listener, err := net.Listen("tcp", p.listenAddr)
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("start callback listener: %w", err)
	}

	cfg := *p.config
	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	authURL := cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	if p.OnAuthURL != nil {
		p.OnAuthURL(authURL)
	}

	result, err := p.awaitCallback(ctx, listener)
	if err != nil {
		return domainauth.Claims{}, err
	}
	if result.denied {
		return domainauth.Claims{}, ports.ErrSignInCanceled
	}
	if result.errParam != "" {
		return domainauth.Claims{}, fmt.Errorf("provider returned error: %s", result.errParam)
	}
	if result.state != state {
		return domainauth.Claims{}, errors.New("state mismatch in callback")
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := cfg.Exchange(tokenCtx, result.code)
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("exchange code for token: %w", err)
	}

	return p.extractClaims(ctx, tok, nonce)
}

// awaitCallback serves exactly one redirect on the listener, then shuts the
// server down. A canceled context while waiting counts as the user walking
// away from the flow.
func (p *Provider) awaitCallback(ctx context.Context, listener net.Listener) (callbackResult, error) {
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		res := callbackResult{
			code:     q.Get("code"),
			state:    q.Get("state"),
			errParam: q.Get("error"),
		}
		if res.errParam == "access_denied" {
			res.denied = true
		}
		if res.denied || res.errParam != "" {
			http.Error(w, "Sign-in was not completed. You can close this window.", http.StatusOK)
		} else {
			_, _ = fmt.Fprintln(w, "Signed in. You can close this window.")
		}
		select {
		case results <- res:
		default:
		}
	})

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		_ = server.Serve(listener)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-results:
		return res, nil
	case <-ctx.Done():
		return callbackResult{}, ports.ErrSignInCanceled
	}
}

// idTokenClaims is the claim shape we read from the verified id token.
type idTokenClaims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	Nonce   string `json:"nonce"`
}

func (p *Provider) extractClaims(ctx context.Context, tok *oauth2.Token, expectedNonce string) (domainauth.Claims, error) {
	rawID, err := idTokenFromToken(tok)
	if err != nil {
		return domainauth.Claims{}, err
	}

	idTok, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("verify id_token: %w", err)
	}

	var raw idTokenClaims
	if claimsErr := idTok.Claims(&raw); claimsErr != nil {
		return domainauth.Claims{}, fmt.Errorf("parse id_token claims: %w", claimsErr)
	}
	if expectedNonce != "" && raw.Nonce != expectedNonce {
		return domainauth.Claims{}, errors.New("invalid nonce")
	}

	claims := domainauth.Claims{
		Name:    raw.Name,
		Email:   raw.Email,
		Picture: raw.Picture,
	}
	if validateErr := claims.Validate(); validateErr != nil {
		return domainauth.Claims{}, validateErr
	}
	return claims, nil
}

// idTokenFromToken extracts the id_token from the oauth2 token response.
func idTokenFromToken(tok *oauth2.Token) (string, error) {
	if tok == nil {
		return "", errors.New("nil token")
	}
	raw := tok.Extra("id_token")
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", errors.New("missing id_token in token response")
	}
	return s, nil
}

// generateRandomString generates a cryptographically secure URL-safe random string of exact length.
func generateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	for len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}
