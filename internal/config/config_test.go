package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"PORT", "GIN_MODE", "ALLOWED_ORIGINS",
		"ACCESS_TOKEN_EXPIRY", "REFRESH_TOKEN_EXPIRY", "TOKEN_PURGE_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Database.Host != "localhost" || cfg.Database.Port != "3306" {
		t.Errorf("database defaults = %s:%s", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Database.Database != "healthcare_db" {
		t.Errorf("database name = %q, want healthcare_db", cfg.Database.Database)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("access expiry = %v, want 15m", cfg.JWT.AccessTokenExpiry)
	}
	if cfg.JWT.RefreshTokenExpiry != 168*time.Hour {
		t.Errorf("refresh expiry = %v, want 168h", cfg.JWT.RefreshTokenExpiry)
	}
	if cfg.Worker.TokenPurgeInterval != time.Hour {
		t.Errorf("purge interval = %v, want 1h", cfg.Worker.TokenPurgeInterval)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("allowed origins = %v, want two defaults", cfg.CORS.AllowedOrigins)
	}
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("rate limit = %+v", cfg.RateLimit)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "hospital_test")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.example.com, https://ward.example.com")

	cfg := LoadConfig()

	if cfg.Database.Host != "db.internal" {
		t.Errorf("host = %q", cfg.Database.Host)
	}
	if cfg.Database.Database != "hospital_test" {
		t.Errorf("database = %q", cfg.Database.Database)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenExpiry != 30*time.Minute {
		t.Errorf("access expiry = %v", cfg.JWT.AccessTokenExpiry)
	}

	want := []string{"https://admin.example.com", "https://ward.example.com"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("origins = %v", cfg.CORS.AllowedOrigins)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d = %q, want %q", i, cfg.CORS.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadConfigBadDurationFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "fifteen minutes")

	cfg := LoadConfig()
	if cfg.JWT.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("access expiry = %v, want 15m fallback", cfg.JWT.AccessTokenExpiry)
	}
}
