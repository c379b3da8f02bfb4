package fakeapi

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds stand-in backend settings.
type Config struct {
	Addr       string
	Secret     string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int

	// Verbose enables per-request access logs.
	Verbose bool
}

// DefaultConfig returns settings for local development.
func DefaultConfig() Config {
	return Config{
		Addr:       ":9091",
		Secret:     "learnpath-dev-secret",
		Issuer:     "learnpath-fakeapi",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// ConfigFromEnv overlays LEARNPATH_FAKEAPI_* variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LEARNPATH_FAKEAPI_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LEARNPATH_FAKEAPI_SECRET"); v != "" {
		cfg.Secret = v
	}
	if v := os.Getenv("LEARNPATH_FAKEAPI_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
	return cfg
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("fakeapi: secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("fakeapi: token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("fakeapi: bcrypt cost %d out of range", c.BcryptCost)
	}
	return nil
}
