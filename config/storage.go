package config

import (
	"fmt"
	"strings"
)

// StorageMode selects where the signed-in identity is persisted between runs.
type StorageMode string

const (
	// StorageModeFile persists the identity as a JSON file under a state directory.
	StorageModeFile StorageMode = "file"
	// StorageModeRedis persists the identity in Redis, for shared kiosk setups.
	StorageModeRedis StorageMode = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageMode.
func (s *StorageMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*s = StorageMode(v)
		return nil
	default:
		return fmt.Errorf("invalid StorageMode: %q (valid options: file, redis)", v)
	}
}

// RedisConfig contains Redis identity storage configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// Key is the Redis key the identity is stored under. Override to isolate
	// multiple kiosks sharing one Redis.
	Key string `env:"KEY" envDefault:""`
}

// StorageConfig groups identity storage configuration.
type StorageConfig struct {
	// Mode determines which identity store to use.
	Mode StorageMode `env:"STORAGE_MODE" envDefault:"file"`

	// Dir is the state directory for file storage. Empty means a
	// "storefront" directory under the OS user config dir.
	Dir string `env:"STORAGE_DIR" envDefault:""`

	// Redis configuration (used when Mode=redis).
	Redis RedisConfig `envPrefix:"STORAGE_REDIS_"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.Redis.Addr == "" {
		s.Redis.Addr = "localhost:6379"
	}
}
