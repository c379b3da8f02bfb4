package api

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Endpoints holds the backend paths for each operation.
type Endpoints struct {
	Login    string
	Logout   string
	Register string

	// MarkKnown is not fixed by the backend contract, so it is always
	// configurable.
	MarkKnown string
}

// Config holds API client configuration.
type Config struct {
	// BaseURL is the API origin, e.g. "http://localhost:9091".
	BaseURL string

	// Timeout bounds a single request. Zero leaves it to the transport.
	Timeout time.Duration

	Endpoints Endpoints
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:9091",
		Endpoints: Endpoints{
			Login:     "/api/v1/users/login",
			Logout:    "/api/v1/users/logout",
			Register:  "/api/v1/users/register",
			MarkKnown: "/api/v1/nodes/known",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("LEARNPATH_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("LEARNPATH_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}
	if p := os.Getenv("LEARNPATH_MARK_KNOWN_PATH"); p != "" {
		cfg.Endpoints.MarkKnown = p
	}

	return cfg
}

// Validate checks that the base URL is an absolute http(s) URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API base URL %q must use http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("API base URL %q has no host", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("API timeout must not be negative")
	}
	return nil
}
