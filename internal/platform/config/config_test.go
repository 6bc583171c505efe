package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hrportal")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("unexpected ttl %v", cfg.SessionTTL)
	}
	if !cfg.RunMigrations || !cfg.RunSeed {
		t.Error("migrations and seed should default on")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hrportal")
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()
	if cfg.Addr != ":9999" || cfg.SessionTTL != time.Hour || cfg.RateLimitPerMinute != 5 || cfg.MetricsEnabled {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Load()
	base.DatabaseURL = "postgres://localhost/hrportal"

	missingDB := base
	missingDB.DatabaseURL = ""
	if err := missingDB.Validate(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}

	prodDefaults := base
	prodDefaults.Environment = "production"
	prodDefaults.SessionSecret = ""
	if err := prodDefaults.Validate(); err == nil {
		t.Error("production must require a session secret")
	}

	prodAdmin := base
	prodAdmin.Environment = "production"
	prodAdmin.SessionSecret = "long-random-secret"
	prodAdmin.AdminPassword = "admin"
	if err := prodAdmin.Validate(); err == nil {
		t.Error("production must reject the demo admin password")
	}

	badTTL := base
	badTTL.SessionTTL = 0
	if err := badTTL.Validate(); err == nil {
		t.Error("expected error for zero ttl")
	}
}
