package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dukerupert/hearth/internal/database"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != database.MemoryPath {
		t.Errorf("db path = %q, want %q", cfg.DBPath, database.MemoryPath)
	}
	if cfg.SearchLimit != 8 {
		t.Errorf("search limit = %d, want 8", cfg.SearchLimit)
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, want 0", cfg.Seed)
	}
	if len(cfg.OriginPatterns) != 0 {
		t.Errorf("origin patterns = %v, want none", cfg.OriginPatterns)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HEARTH_PORT", "9090")
	t.Setenv("HEARTH_DB_PATH", "/tmp/hearth.db")
	t.Setenv("HEARTH_LOG_LEVEL", "debug")
	t.Setenv("HEARTH_LOG_FORMAT", "json")
	t.Setenv("HEARTH_SEARCH_LIMIT", "5")
	t.Setenv("HEARTH_SEED", "42")
	t.Setenv("HEARTH_RATE_LIMIT", "2.5")
	t.Setenv("HEARTH_RATE_BURST", "4")
	t.Setenv("HEARTH_ORIGIN_PATTERNS", "kitchen.local, ,*.home.arpa")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/hearth.db" || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected strings: %+v", cfg)
	}
	if cfg.SearchLimit != 5 || cfg.Seed != 42 || cfg.RateLimit != 2.5 || cfg.RateBurst != 4 {
		t.Errorf("unexpected numbers: %+v", cfg)
	}
	if len(cfg.OriginPatterns) != 2 || cfg.OriginPatterns[0] != "kitchen.local" || cfg.OriginPatterns[1] != "*.home.arpa" {
		t.Errorf("origin patterns = %q", cfg.OriginPatterns)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hearth.yaml")
	data := []byte("port: \"7070\"\nsearch_limit: 3\norigin_patterns:\n  - kitchen.local\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HEARTH_SEARCH_LIMIT", "6")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("port = %q, want 7070", cfg.Port)
	}
	if cfg.SearchLimit != 6 {
		t.Errorf("search limit = %d, want env value 6", cfg.SearchLimit)
	}
	if len(cfg.OriginPatterns) != 1 || cfg.OriginPatterns[0] != "kitchen.local" {
		t.Errorf("origin patterns = %v", cfg.OriginPatterns)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"HEARTH_SEARCH_LIMIT": "0",
		"HEARTH_SEED":         "-1",
		"HEARTH_RATE_LIMIT":   "fast",
		"HEARTH_RATE_BURST":   "x",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			if _, err := Load(""); err == nil {
				t.Errorf("%s=%q: expected error", k, v)
			}
		})
	}
}
