package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"yemalin/internal/models"
	"yemalin/internal/universe"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAsset creates an equity asset with a unique ticker.
func CreateTestAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()
	n := nextID()
	return CreateTestAssetWith(t, db, &models.Asset{
		Ticker:         fmt.Sprintf("TST%d", n),
		Name:           fmt.Sprintf("Test Asset %d", n),
		Class:          models.AssetClassEquity,
		ExpectedReturn: 0.06,
		Volatility:     0.15,
		Liquidity:      0.9,
	})
}

// CreateTestAssetWith inserts the given asset.
func CreateTestAssetWith(t *testing.T, db *gorm.DB, asset *models.Asset) *models.Asset {
	t.Helper()

	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// SeedDemoUniverse inserts the embedded demo universe and returns the rows.
func SeedDemoUniverse(t *testing.T, db *gorm.DB) []models.Asset {
	t.Helper()

	entries := universe.Default()
	assets := make([]models.Asset, 0, len(entries))
	for _, e := range entries {
		a := CreateTestAssetWith(t, db, &models.Asset{
			Ticker:         e.Ticker,
			Name:           e.Name,
			Class:          models.AssetClass(e.Class),
			ExpectedReturn: e.ExpectedReturn,
			Volatility:     e.Volatility,
			Liquidity:      e.Liquidity,
		})
		assets = append(assets, *a)
	}
	return assets
}
