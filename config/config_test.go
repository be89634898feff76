package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != ":3001" {
		t.Errorf("port = %q, want :3001", cfg.Server.Port)
	}
	if cfg.JWT.TTL != 7*24*time.Hour {
		t.Errorf("jwt ttl = %v, want 7 days", cfg.JWT.TTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 4 {
		t.Errorf("origins = %v, want the four local dev origins", cfg.CORS.AllowedOrigins)
	}
	if cfg.Seed.DemoData {
		t.Error("demo data should be off by default")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: ":9000"
jwt:
  secret: from-file
seed:
  demo_data: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != ":9000" {
		t.Errorf("port = %q, want :9000", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("secret = %q, want env value", cfg.JWT.Secret)
	}
	// untouched keys keep their defaults
	if cfg.JWT.TTL != 7*24*time.Hour {
		t.Errorf("jwt ttl = %v", cfg.JWT.TTL)
	}
	if !cfg.Seed.DemoData {
		t.Error("demo data should be enabled from file")
	}
}
