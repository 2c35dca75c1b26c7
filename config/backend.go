package config

import "time"

// BackendConfig contains the storefront backend connection configuration.
type BackendConfig struct {
	// BaseURL is the root of the storefront REST backend.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each backend request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
