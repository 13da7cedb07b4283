package config

import (
	"os"
	"reflect"
	"testing"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv(key)
			return
		}
		_ = os.Setenv(key, original)
	})
}

func TestDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "SITE_NAME", "NAVIGATION_FILE", "ENABLE_METRICS", "CORS_ORIGINS"} {
		unsetEnv(t, key)
	}

	cfg := New()
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr())
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Fatalf("expected development environment by default")
	}
	if cfg.SiteName != "Chitragupta" {
		t.Fatalf("unexpected site name %q", cfg.SiteName)
	}
	if cfg.NavigationFile != "" {
		t.Fatalf("expected built-in navigation by default, got %q", cfg.NavigationFile)
	}
	if !cfg.EnableMetrics {
		t.Fatalf("expected metrics to be enabled by default")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_METRICS", "false")
	t.Setenv("RATE_LIMIT_REQUESTS", "7")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("NAVIGATION_FILE", "/etc/chitragupta/navigation.yaml")

	cfg := New()
	if cfg.Port != "9090" || !cfg.IsProduction() {
		t.Fatalf("expected port and environment overrides, got %s/%s", cfg.Port, cfg.Environment)
	}
	if cfg.EnableMetrics {
		t.Fatalf("expected metrics to be disabled")
	}
	if cfg.RateLimitRequests != 7 {
		t.Fatalf("expected rate limit 7, got %d", cfg.RateLimitRequests)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORSOrigins)
	}
	if cfg.NavigationFile != "/etc/chitragupta/navigation.yaml" {
		t.Fatalf("unexpected navigation file %q", cfg.NavigationFile)
	}
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "soon")

	if got := New().RateLimitWindow; got != 60 {
		t.Fatalf("expected fallback window 60, got %d", got)
	}
}
