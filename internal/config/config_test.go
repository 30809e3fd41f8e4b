package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KENMEI_KB_CONFIG", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":8080" || cfg.Server.MetricsAddress != ":2112" {
		t.Fatalf("unexpected server defaults %+v", cfg.Server)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.JSON {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Cache.Enabled || cfg.Cache.Size != 512 || cfg.Cache.TTL != time.Minute {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
server:
  address: ":9090"
logging:
  level: debug
  json: true
data:
  path: /etc/kenmei/knowledge.yaml
cache:
  enabled: true
  size: 128
  ttl: 30s
cors:
  allowOrigins: ["https://agent.example.com"]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Fatalf("address = %q", cfg.Server.Address)
	}
	// Values the file omits keep their defaults.
	if cfg.Server.MetricsAddress != ":2112" {
		t.Fatalf("metrics address = %q", cfg.Server.MetricsAddress)
	}
	if !cfg.Logging.JSON || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Data.Path != "/etc/kenmei/knowledge.yaml" {
		t.Fatalf("data path = %q", cfg.Data.Path)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Size != 128 || cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "https://agent.example.com" {
		t.Fatalf("cors = %+v", cfg.CORS)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for explicit missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KENMEI_KB_CONFIG", "")
	t.Setenv("KENMEI_KB_SERVER_ADDRESS", ":7070")
	t.Setenv("KENMEI_KB_LOG_FORMAT", "json")
	t.Setenv("KENMEI_KB_CACHE_ENABLED", "true")
	t.Setenv("KENMEI_KB_CACHE_TTL", "90s")
	t.Setenv("KENMEI_KB_CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":7070" {
		t.Fatalf("address = %q", cfg.Server.Address)
	}
	if !cfg.Logging.JSON {
		t.Fatalf("expected JSON logging from env")
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 90*time.Second {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORS.AllowOrigins) != 2 || cfg.CORS.AllowOrigins[0] != want[0] || cfg.CORS.AllowOrigins[1] != want[1] {
		t.Fatalf("cors = %+v", cfg.CORS.AllowOrigins)
	}
}
