package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all VENTURELENS_ env vars to test pure defaults
	envVars := []string{
		"VENTURELENS_PORT", "VENTURELENS_METRICS_PORT", "VENTURELENS_ADMIN_TOKEN",
		"VENTURELENS_DATABASE_URL", "VENTURELENS_REDIS_ADDR", "VENTURELENS_REDIS_PASSWORD",
		"VENTURELENS_REDIS_DB", "VENTURELENS_EVENTS_URL", "VENTURELENS_SESSION_TTL_HOURS",
		"VENTURELENS_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Session.TTLHours != 24 {
		t.Errorf("expected session ttl 24h, got %d", cfg.Session.TTLHours)
	}
	if cfg.SessionTTL() != 24*time.Hour {
		t.Errorf("expected SessionTTL 24h, got %v", cfg.SessionTTL())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VENTURELENS_PORT", "9000")
	t.Setenv("VENTURELENS_METRICS_PORT", "9001")
	t.Setenv("VENTURELENS_ADMIN_TOKEN", "secret-token")
	t.Setenv("VENTURELENS_DATABASE_URL", "postgres://localhost/venturelens_test")
	t.Setenv("VENTURELENS_REDIS_ADDR", "redis:6379")
	t.Setenv("VENTURELENS_REDIS_DB", "2")
	t.Setenv("VENTURELENS_EVENTS_URL", "nats://nats:4222")
	t.Setenv("VENTURELENS_SESSION_TTL_HOURS", "8")
	t.Setenv("VENTURELENS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/venturelens_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("expected redis addr, got '%s'", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.Redis.DB)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got '%s'", cfg.Events.URL)
	}
	if cfg.Session.TTLHours != 8 {
		t.Errorf("expected session ttl 8, got %d", cfg.Session.TTLHours)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  port: 8800
  admin_token: file-token
database:
  url: postgres://db/venturelens
session:
  ttl_hours: 48
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	for _, k := range []string{"VENTURELENS_PORT", "VENTURELENS_ADMIN_TOKEN", "VENTURELENS_DATABASE_URL", "VENTURELENS_SESSION_TTL_HOURS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 || cfg.Server.AdminToken != "file-token" {
		t.Errorf("file values not applied: %+v", cfg.Server)
	}
	if cfg.Database.URL != "postgres://db/venturelens" {
		t.Errorf("database url = %s", cfg.Database.URL)
	}
	if cfg.Session.TTLHours != 48 {
		t.Errorf("session ttl = %d", cfg.Session.TTLHours)
	}
	// Defaults survive partial files.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("metrics port default lost: %d", cfg.Server.MetricsPort)
	}
}
