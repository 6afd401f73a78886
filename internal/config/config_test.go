package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Edgar.TickerTableURL != "https://www.sec.gov/files/company_tickers.json" {
		t.Errorf("unexpected ticker table URL: %s", cfg.Edgar.TickerTableURL)
	}
	if cfg.Edgar.SubmissionsBase != "https://data.sec.gov/submissions" {
		t.Errorf("unexpected submissions base: %s", cfg.Edgar.SubmissionsBase)
	}
	if cfg.Edgar.UserAgent == "" {
		t.Error("expected a default User-Agent; registry rejects anonymous clients")
	}
	if cfg.Edgar.CacheTTL() != time.Hour {
		t.Errorf("expected 1h cache TTL, got %s", cfg.Edgar.CacheTTL())
	}
	if cfg.Edgar.RequestGap() != 100*time.Millisecond {
		t.Errorf("expected 100ms request gap, got %s", cfg.Edgar.RequestGap())
	}
	if cfg.Edgar.RetryBackoff() != 10*time.Second {
		t.Errorf("expected 10s retry backoff, got %s", cfg.Edgar.RetryBackoff())
	}
	if cfg.API.Port != 8750 {
		t.Errorf("expected default port 8750, got %d", cfg.API.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
edgar:
  user_agent: "acme-research/2.0 (data@acme.example)"
  cache_ttl_sec: 600
  request_gap_ms: 250
api:
  port: 9000
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Edgar.UserAgent != "acme-research/2.0 (data@acme.example)" {
		t.Errorf("unexpected user agent: %s", cfg.Edgar.UserAgent)
	}
	if cfg.Edgar.CacheTTL() != 10*time.Minute {
		t.Errorf("expected 10m TTL override, got %s", cfg.Edgar.CacheTTL())
	}
	if cfg.Edgar.RequestGap() != 250*time.Millisecond {
		t.Errorf("expected 250ms gap override, got %s", cfg.Edgar.RequestGap())
	}
	if cfg.API.Port != 9000 {
		t.Errorf("expected port override 9000, got %d", cfg.API.Port)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json logging, got %s", cfg.Logging.Format)
	}

	// Keys the file omits keep their defaults.
	if cfg.Edgar.SubmissionsBase != "https://data.sec.gov/submissions" {
		t.Errorf("expected default submissions base preserved, got %s", cfg.Edgar.SubmissionsBase)
	}
	if cfg.Edgar.RetryBackoff() != 10*time.Second {
		t.Errorf("expected default retry backoff preserved, got %s", cfg.Edgar.RetryBackoff())
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FILINGLENS_EDGAR_REQUEST_GAP_MS", "500")
	t.Setenv("FILINGLENS_API_PORT", "8123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Edgar.RequestGap() != 500*time.Millisecond {
		t.Errorf("expected env override to 500ms, got %s", cfg.Edgar.RequestGap())
	}
	if cfg.API.Port != 8123 {
		t.Errorf("expected env override to 8123, got %d", cfg.API.Port)
	}
}
