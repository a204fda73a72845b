package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("BACKEND_API_KEY", "sk_test")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("BACKEND_LIST_TIMEOUT", "")
	t.Setenv("BACKEND_CALL_TIMEOUT", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.APIKey != "sk_test" {
		t.Fatalf("unexpected api key: %q", cfg.APIKey)
	}
	if cfg.BackendURL != "https://api.seomcp.run" {
		t.Fatalf("unexpected backend url: %q", cfg.BackendURL)
	}
	if cfg.ListTimeout != 10*time.Second || cfg.CallTimeout != 60*time.Second {
		t.Fatalf("unexpected timeouts: %v / %v", cfg.ListTimeout, cfg.CallTimeout)
	}
}

func TestFromEnv_MissingKeyFails(t *testing.T) {
	t.Setenv("BACKEND_API_KEY", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when BACKEND_API_KEY is unset")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BACKEND_API_KEY", "sk_test")
	t.Setenv("BACKEND_URL", "http://localhost:8080")
	t.Setenv("BACKEND_LIST_TIMEOUT", "2s")
	t.Setenv("BACKEND_CALL_TIMEOUT", "5s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.BackendURL != "http://localhost:8080" {
		t.Fatalf("unexpected backend url: %q", cfg.BackendURL)
	}
	if cfg.ListTimeout != 2*time.Second || cfg.CallTimeout != 5*time.Second {
		t.Fatalf("unexpected timeouts: %v / %v", cfg.ListTimeout, cfg.CallTimeout)
	}
}
