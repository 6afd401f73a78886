// Package config handles configuration loading for filinglens.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Edgar   EdgarConfig   `mapstructure:"edgar"   yaml:"edgar"`
	Prices  PricesConfig  `mapstructure:"prices"  yaml:"prices"`
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// EdgarConfig holds SEC EDGAR endpoints and politeness settings.
//
// UserAgent is a hard operational requirement: EDGAR blocks requests
// without a descriptive contact-style identifying string.
type EdgarConfig struct {
	UserAgent       string `mapstructure:"user_agent"        yaml:"user_agent"`
	TickerTableURL  string `mapstructure:"ticker_table_url"  yaml:"ticker_table_url"`
	SubmissionsBase string `mapstructure:"submissions_base"  yaml:"submissions_base"`
	ArchiveBase     string `mapstructure:"archive_base"      yaml:"archive_base"`
	FeedBase        string `mapstructure:"feed_base"         yaml:"feed_base"`
	CacheTTLSec     int    `mapstructure:"cache_ttl_sec"     yaml:"cache_ttl_sec"`
	RequestGapMs    int    `mapstructure:"request_gap_ms"    yaml:"request_gap_ms"`
	RetryBackoffSec int    `mapstructure:"retry_backoff_sec" yaml:"retry_backoff_sec"`
}

// CacheTTL returns the memoization TTL as a duration.
func (c EdgarConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}

// RequestGap returns the minimum inter-request delay as a duration.
func (c EdgarConfig) RequestGap() time.Duration {
	return time.Duration(c.RequestGapMs) * time.Millisecond
}

// RetryBackoff returns the wait before the single 429 retry as a duration.
func (c EdgarConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSec) * time.Second
}

// PricesConfig holds the stock price chart data source settings.
type PricesConfig struct {
	ChartBase string `mapstructure:"chart_base" yaml:"chart_base"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.filinglens/config.yaml (home directory)
//  3. /etc/filinglens/config.yaml (system)
//
// Environment variables override config file values.
// Format: FILINGLENS_<SECTION>_<KEY>, e.g., FILINGLENS_EDGAR_USER_AGENT
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".filinglens"))
	v.AddConfigPath("/etc/filinglens")

	v.SetEnvPrefix("FILINGLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not required to exist; defaults + env vars suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("FILINGLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Default returns a Config populated with defaults only. Useful for tests
// and for callers that configure endpoints programmatically.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// EDGAR endpoints.
	v.SetDefault("edgar.user_agent", "filinglens/1.0 (github.com/seenimoa/filinglens; contact@seenimoa.dev)")
	v.SetDefault("edgar.ticker_table_url", "https://www.sec.gov/files/company_tickers.json")
	v.SetDefault("edgar.submissions_base", "https://data.sec.gov/submissions")
	v.SetDefault("edgar.archive_base", "https://www.sec.gov/Archives/edgar/data")
	v.SetDefault("edgar.feed_base", "https://www.sec.gov/cgi-bin/browse-edgar")

	// EDGAR politeness: 100ms minimum gap between requests, one 10s
	// retry on 429, results memoized for an hour.
	v.SetDefault("edgar.cache_ttl_sec", 3600)
	v.SetDefault("edgar.request_gap_ms", 100)
	v.SetDefault("edgar.retry_backoff_sec", 10)

	// Prices (Yahoo Finance chart API).
	v.SetDefault("prices.chart_base", "https://query1.finance.yahoo.com/v8/finance/chart")

	// API server defaults.
	v.SetDefault("api.host", "127.0.0.1")
	v.SetDefault("api.port", 8750)

	// Logging defaults.
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory, or "." if unavailable.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
