package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "DB_DRIVER", "DB_PATH", "UNIVERSE_FILE", "SHUTDOWN_TIMEOUT", "FRONTIER_POINTS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("expected env development, got %q", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.Path != "yemalin.db" {
		t.Errorf("expected sqlite at yemalin.db, got %s at %s", cfg.DB.Driver, cfg.DB.Path)
	}
	if cfg.UniverseFile != "" {
		t.Errorf("expected embedded universe, got %q", cfg.UniverseFile)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.FrontierPoints != 25 {
		t.Errorf("expected 25 frontier points, got %d", cfg.FrontierPoints)
	}
	if cfg.IsProduction() {
		t.Error("expected non-production config")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("FRONTIER_POINTS", "40")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("expected production config")
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DB.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %q", cfg.DB.Driver)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.FrontierPoints != 40 {
		t.Errorf("expected 40 points, got %d", cfg.FrontierPoints)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("FRONTIER_POINTS", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected fallback 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.FrontierPoints != 25 {
		t.Errorf("expected fallback 25, got %d", cfg.FrontierPoints)
	}
}

func TestGet_ReturnsLoadedConfig(t *testing.T) {
	t.Setenv("PORT", "9191")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := Get(); got != loaded {
		t.Errorf("expected Get to return the loaded config, got %+v", got)
	}
	if Get().Port != "9191" {
		t.Errorf("expected port 9191, got %q", Get().Port)
	}
}

func TestGet_LoadsOnFirstUse(t *testing.T) {
	appConfig = nil
	t.Setenv("FRONTIER_POINTS", "12")

	cfg := Get()
	if cfg == nil || cfg.FrontierPoints != 12 {
		t.Fatalf("expected lazily loaded config with 12 frontier points, got %+v", cfg)
	}
}
