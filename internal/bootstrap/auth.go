package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	goredis "github.com/redis/go-redis/v9"
	"github.com/slicelab/storefront/config"
	"github.com/slicelab/storefront/internal/adapters/devauth"
	"github.com/slicelab/storefront/internal/adapters/filestore"
	"github.com/slicelab/storefront/internal/adapters/oidc"
	redisadapter "github.com/slicelab/storefront/internal/adapters/redis"
	"github.com/slicelab/storefront/internal/adapters/token"
	"github.com/slicelab/storefront/internal/ports"
	"github.com/slicelab/storefront/internal/service"
)

// SessionConfig contains configuration for building the session manager.
type SessionConfig struct {
	Auth      config.AuthConfig
	Storage   config.StorageConfig
	Registrar ports.UserRegistrar
	Logger    *slog.Logger

	// OnAuthURL receives the provider authorization URL in oauth mode, so
	// the caller can print it or open a browser. Optional.
	OnAuthURL func(url string)
}

// BuildSessionManager assembles the auth provider and identity store for the
// configured modes and returns a session manager in the Unresolved state.
func BuildSessionManager(cfg SessionConfig) (*service.SessionManager, error) {
	provider, err := buildAuthProvider(cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildIdentityStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	return service.NewSessionManager(service.SessionManagerOptions{
		Provider:  provider,
		Store:     store,
		Registrar: cfg.Registrar,
		Logger:    cfg.Logger,
	}), nil
}

func buildAuthProvider(cfg SessionConfig) (ports.AuthProvider, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeOAuth:
		oauth := cfg.Auth.OAuth
		if oauth.DiscoveryURL == "" || oauth.ClientID == "" {
			return nil, fmt.Errorf("oauth mode requires OAUTH_DISCOVERY_URL and OAUTH_CLIENT_ID")
		}
		prov, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			Scope:        oauth.Scope,
			DiscoveryURL: oauth.DiscoveryURL,
			ListenAddr:   oauth.ListenAddr,
		})
		if err != nil {
			return nil, fmt.Errorf("create OIDC provider: %w", err)
		}
		if cfg.OnAuthURL != nil {
			prov.OnAuthURL = cfg.OnAuthURL
		}
		return prov, nil

	case config.AuthModeToken:
		tok := cfg.Auth.Token
		decoder, err := token.NewDecoder(token.DecoderConfig{
			NameExpr:    tok.NameExpr,
			EmailExpr:   tok.EmailExpr,
			PictureExpr: tok.PictureExpr,
		})
		if err != nil {
			return nil, fmt.Errorf("create token decoder: %w", err)
		}
		prov, err := token.NewProvider(decoder, tok.Raw)
		if err != nil {
			return nil, fmt.Errorf("create token provider: %w", err)
		}
		return prov, nil

	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			Name:    cfg.Auth.DevAuth.Name,
			Email:   cfg.Auth.DevAuth.Email,
			Picture: cfg.Auth.DevAuth.Picture,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		return prov, nil

	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Auth.Mode)
	}
}

func buildIdentityStore(cfg config.StorageConfig) (ports.IdentityStore, error) {
	switch cfg.Mode {
	case config.StorageModeFile:
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve state directory: %w", err)
			}
			dir = filepath.Join(base, "storefront")
		}
		return filestore.NewIdentityStore(dir), nil

	case config.StorageModeRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if cfg.Redis.Key != "" {
			return redisadapter.NewIdentityStoreWithKey(client, cfg.Redis.Key), nil
		}
		return redisadapter.NewIdentityStore(client), nil

	default:
		return nil, fmt.Errorf("unsupported storage mode %q", cfg.Mode)
	}
}
