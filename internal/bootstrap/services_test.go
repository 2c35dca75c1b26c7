package bootstrap

import (
	"testing"
	"time"

	"github.com/slicelab/storefront/config"
)

func TestBuildBackendClient(t *testing.T) {
	client, err := BuildBackendClient(config.BackendConfig{
		BaseURL: "http://localhost:3000",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("BuildBackendClient() error: %v", err)
	}

	cart := BuildCartController(client, nil)
	if cart == nil {
		t.Fatal("expected cart controller")
	}

	catalog := BuildCatalogService(client)
	if catalog == nil {
		t.Fatal("expected catalog service")
	}
}

func TestBuildBackendClient_RequiresBaseURL(t *testing.T) {
	if _, err := BuildBackendClient(config.BackendConfig{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}
