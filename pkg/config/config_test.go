package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8090" {
		t.Errorf("Port = %q, want 8090", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Screen.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Screen.Workers)
	}
	if cfg.Fetch.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.Fetch.RequestTimeout)
	}
	if cfg.Fetch.UniverseLimit != 100 {
		t.Errorf("UniverseLimit = %d, want 100", cfg.Fetch.UniverseLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SCREEN_WORKERS", "4")
	t.Setenv("FETCH_REQUESTS_PER_SEC", "0.5")
	t.Setenv("UNIVERSE_LIMIT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Screen.Workers != 4 {
		t.Errorf("Workers = %d", cfg.Screen.Workers)
	}
	if cfg.Fetch.RequestsPerSec != 0.5 {
		t.Errorf("RequestsPerSec = %v", cfg.Fetch.RequestsPerSec)
	}
	if cfg.Fetch.UniverseLimit != 25 {
		t.Errorf("UniverseLimit = %d", cfg.Fetch.UniverseLimit)
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("ENV", "testing")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for unknown ENV")
	}
}

func TestLoadRejectsZeroWorkers(t *testing.T) {
	t.Setenv("SCREEN_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for zero workers")
	}
}

func TestMalformedIntFallsBackToDefault(t *testing.T) {
	t.Setenv("UNIVERSE_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fetch.UniverseLimit != 100 {
		t.Errorf("UniverseLimit = %d, want default 100", cfg.Fetch.UniverseLimit)
	}
}
