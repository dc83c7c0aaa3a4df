package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.ScanMode != "auto" {
		t.Errorf("Expected auto mode, got %q", cfg.ScanMode)
	}
	if cfg.BrowserPoolSize != DefaultBrowserPoolSize {
		t.Errorf("Expected pool size %d, got %d", DefaultBrowserPoolSize, cfg.BrowserPoolSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONTACTSCAN_USER_AGENT", "TestAgent/2.0")
	t.Setenv("CONTACTSCAN_MODE", "static")
	t.Setenv("CONTACTSCAN_CACHE_TTL", "90s")
	t.Setenv("CONTACTSCAN_CONCURRENCY", "7")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.UserAgent != "TestAgent/2.0" {
		t.Errorf("Expected env user agent, got %q", cfg.UserAgent)
	}
	if cfg.ScanMode != "static" {
		t.Errorf("Expected static mode, got %q", cfg.ScanMode)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Errorf("Expected 90s cache TTL, got %v", cfg.CacheTTL)
	}
	if cfg.BatchConcurrency != 7 {
		t.Errorf("Expected concurrency 7, got %d", cfg.BatchConcurrency)
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	t.Setenv("CONTACTSCAN_MODE", "turbo")

	if _, err := Load(nil); err == nil {
		t.Error("Expected an error for an unknown scan mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"oversized pool", func(c *Config) { c.BrowserPoolSize = 99 }, true},
		{"negative concurrency", func(c *Config) { c.BatchConcurrency = -1 }, true},
		{"spa mode", func(c *Config) { c.ScanMode = "spa" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				HTTPTimeout:       DefaultHTTPTimeout,
				BrowserPoolSize:   DefaultBrowserPoolSize,
				CacheMaxSizeBytes: DefaultCacheMaxSizeBytes,
				ScanMode:          DefaultScanMode,
			}
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
