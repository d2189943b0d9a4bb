package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DB_PATH", "JWT_ACCESS_TTL", "JWT_REFRESH_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("port = %q, want 5000", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Fatalf("environment = %q, want development", cfg.Environment)
	}
	if cfg.AccessTokenTTL != DefaultAccessTokenTTL {
		t.Fatalf("access ttl = %v, want %v", cfg.AccessTokenTTL, DefaultAccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != DefaultRefreshTokenTTL {
		t.Fatalf("refresh ttl = %v, want %v", cfg.RefreshTokenTTL, DefaultRefreshTokenTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_ACCESS_TTL", "30m")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("access ttl = %v, want 30m", cfg.AccessTokenTTL)
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")
	t.Setenv("JWT_REFRESH_TTL", "-1h")

	cfg := Load()
	if cfg.AccessTokenTTL != DefaultAccessTokenTTL {
		t.Fatalf("access ttl = %v, want default on parse failure", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != DefaultRefreshTokenTTL {
		t.Fatalf("refresh ttl = %v, want default on non-positive value", cfg.RefreshTokenTTL)
	}
}
