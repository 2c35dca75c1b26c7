package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/slicelab/storefront/config"
	"github.com/slicelab/storefront/internal/adapters/rest"
	"github.com/slicelab/storefront/internal/service"
)

// BuildBackendClient constructs the REST client for the storefront backend.
func BuildBackendClient(cfg config.BackendConfig) (*rest.Client, error) {
	client, err := rest.NewClient(rest.ClientConfig{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	return client, nil
}

// BuildCartController constructs the cart controller over the backend client.
func BuildCartController(backend *rest.Client, logger *slog.Logger) *service.CartController {
	return service.NewCartController(service.CartControllerOptions{
		Backend: backend,
		Logger:  logger,
	})
}

// BuildCatalogService constructs the catalog service over the backend client.
func BuildCatalogService(backend *rest.Client) *service.CatalogService {
	return service.NewCatalogService(backend)
}
