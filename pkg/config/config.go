// Package config loads proxy configuration from the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds everything the proxy needs to reach the backend. The API key
// is mandatory; everything else has a production default.
type Config struct {
	APIKey      string        `env:"BACKEND_API_KEY,required"`
	BackendURL  string        `env:"BACKEND_URL,default=https://api.seomcp.run"`
	ListTimeout time.Duration `env:"BACKEND_LIST_TIMEOUT,default=10s"`
	CallTimeout time.Duration `env:"BACKEND_CALL_TIMEOUT,default=60s"`
}

// FromEnv populates a Config via envdecode. A missing BACKEND_API_KEY is the
// only required field and its absence is fatal for the caller.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return &cfg, nil
}
