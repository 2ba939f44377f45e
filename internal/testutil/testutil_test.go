package testutil_test

import (
	"testing"

	"yemalin/internal/errors"
	"yemalin/internal/models"
	"yemalin/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("assets").Count(&count).Error; err != nil {
		t.Errorf("table assets should exist after migration: %v", err)
	}
	if count != 0 {
		t.Errorf("expected a fresh database, found %d assets", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	asset := testutil.CreateTestAsset(t, db)
	if asset.ID == "" {
		t.Fatal("asset should have an ID")
	}
	if asset.Class != models.AssetClassEquity {
		t.Errorf("expected equity, got %s", asset.Class)
	}

	seeded := testutil.SeedDemoUniverse(t, db)
	var count int64
	db.Model(&models.Asset{}).Count(&count)
	if count != int64(len(seeded))+1 {
		t.Errorf("expected %d assets, got %d", len(seeded)+1, count)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrInvalidInput, "INVALID_INPUT")
	testutil.AssertAppError(t, errors.WithMessage(errors.ErrNotFound, "gone"), "NOT_FOUND")
}
