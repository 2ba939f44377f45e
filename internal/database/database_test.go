package database

import (
	"path/filepath"
	"strings"
	"testing"

	"yemalin/internal/config"
	"yemalin/internal/models"
)

func newSQLiteManager(t *testing.T) *Manager {
	t.Helper()

	cfg := config.DBConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}
	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("failed to close manager: %v", err)
		}
	})
	return m
}

func TestRunMigrations(t *testing.T) {
	m := newSQLiteManager(t)

	if err := m.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	// Second run is a no-op.
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}

	asset := &models.Asset{Ticker: "GOLD", Name: "Gold", Class: models.AssetClassCommodity, ExpectedReturn: 0.05, Volatility: 0.2, Liquidity: 0.85}
	if err := m.DB().Create(asset).Error; err != nil {
		t.Fatalf("failed to insert into migrated schema: %v", err)
	}

	var got models.Asset
	if err := m.DB().Where("ticker = ?", "GOLD").First(&got).Error; err != nil {
		t.Fatalf("failed to read back asset: %v", err)
	}
	if got.ID == "" || got.Liquidity != 0.85 {
		t.Errorf("unexpected asset: %+v", got)
	}

	dup := &models.Asset{Ticker: "GOLD", Name: "Gold again", Class: models.AssetClassCommodity}
	if err := m.DB().Create(dup).Error; err == nil {
		t.Error("expected unique ticker constraint violation")
	}
}

func TestMigrateDown(t *testing.T) {
	m := newSQLiteManager(t)
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	mig, err := NewMigrator(m.migrateURL)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	defer CloseMigrator(mig)

	version, dirty, err := mig.Version()
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != 2 || dirty {
		t.Errorf("expected clean version 2, got %d (dirty=%v)", version, dirty)
	}

	if err := mig.Down(); err != nil {
		t.Fatalf("down migration failed: %v", err)
	}
	if m.DB().Migrator().HasTable("assets") {
		t.Error("expected assets table to be dropped")
	}
}

func TestNewManager_UnsupportedDriver(t *testing.T) {
	_, err := NewManager(config.DBConfig{Driver: "mysql"})
	if err == nil || !strings.Contains(err.Error(), "unsupported DB_DRIVER") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestMigrateURL(t *testing.T) {
	got, err := MigrateURL(config.DBConfig{
		Driver: DriverPostgres, Host: "db", Port: "5432",
		User: "yemalin", Password: "p@ss", Name: "demo", SSLMode: "disable",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "postgres://yemalin:p%40ss@db:5432/demo?sslmode=disable"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	got, err = MigrateURL(config.DBConfig{Driver: DriverSQLite, Path: "data/demo.db"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "sqlite3://data/demo.db" {
		t.Errorf("unexpected sqlite url %s", got)
	}
}
