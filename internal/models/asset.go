package models

// AssetClass represents the broad class of an investable asset.
type AssetClass string

const (
	AssetClassEquity      AssetClass = "equity"
	AssetClassBond        AssetClass = "bond"
	AssetClassCommodity   AssetClass = "commodity"
	AssetClassRealEstate  AssetClass = "real_estate"
	AssetClassMoneyMarket AssetClass = "money_market"
)

// AssetClasses lists every class in display order.
var AssetClasses = []AssetClass{
	AssetClassEquity,
	AssetClassBond,
	AssetClassCommodity,
	AssetClassRealEstate,
	AssetClassMoneyMarket,
}

// Valid reports whether c is a known asset class.
func (c AssetClass) Valid() bool {
	for _, known := range AssetClasses {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable name for the class.
func (c AssetClass) Label() string {
	switch c {
	case AssetClassEquity:
		return "Equities"
	case AssetClassBond:
		return "Bonds"
	case AssetClassCommodity:
		return "Commodities"
	case AssetClassRealEstate:
		return "Listed real estate"
	case AssetClassMoneyMarket:
		return "Money market"
	}
	return string(c)
}

// Asset is an entry of the investable universe. Returns and volatility are
// annualised fractions; liquidity is a score between 0 and 1.
type Asset struct {
	Base
	Ticker         string     `gorm:"not null;size:32;uniqueIndex:uq_assets_ticker" json:"ticker"`
	Name           string     `gorm:"not null;size:200" json:"name"`
	Class          AssetClass `gorm:"not null;size:32;index" json:"class"`
	ExpectedReturn float64    `gorm:"not null" json:"expected_return"`
	Volatility     float64    `gorm:"not null" json:"volatility"`
	Liquidity      float64    `gorm:"not null;default:1;index:idx_assets_liquidity" json:"liquidity"`
}
