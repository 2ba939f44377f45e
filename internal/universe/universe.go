// Package universe reads the investable universe seed file.
package universe

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"yemalin/internal/models"
)

//go:embed default.yaml
var defaultUniverse []byte

// Entry is one asset of a seed file.
type Entry struct {
	Ticker         string  `yaml:"ticker"`
	Name           string  `yaml:"name"`
	Class          string  `yaml:"class"`
	ExpectedReturn float64 `yaml:"expected_return"`
	Volatility     float64 `yaml:"volatility"`
	Liquidity      float64 `yaml:"liquidity"`
}

// File is the top-level document of a seed file.
type File struct {
	Assets []Entry `yaml:"assets"`
}

// Load reads a seed file from path. An empty path selects the embedded demo universe.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Parse(defaultUniverse)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded demo universe.
func Default() []Entry {
	entries, err := Parse(defaultUniverse)
	if err != nil {
		panic(fmt.Sprintf("embedded universe is invalid: %v", err))
	}
	return entries
}

// Parse decodes and validates a seed document. Tickers are upper-cased.
func Parse(data []byte) ([]Entry, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse universe file: %w", err)
	}

	seen := make(map[string]bool, len(f.Assets))
	for i := range f.Assets {
		e := &f.Assets[i]
		e.Ticker = strings.ToUpper(strings.TrimSpace(e.Ticker))
		if e.Ticker == "" {
			return nil, fmt.Errorf("asset %d: ticker is required", i)
		}
		if seen[e.Ticker] {
			return nil, fmt.Errorf("asset %s: duplicate ticker", e.Ticker)
		}
		seen[e.Ticker] = true

		if e.Name == "" {
			e.Name = e.Ticker
		}
		if !models.AssetClass(e.Class).Valid() {
			return nil, fmt.Errorf("asset %s: unknown class %q", e.Ticker, e.Class)
		}
		if !finite(e.ExpectedReturn) || !finite(e.Volatility) || !finite(e.Liquidity) {
			return nil, fmt.Errorf("asset %s: attributes must be finite numbers", e.Ticker)
		}
		if e.Volatility < 0 {
			return nil, fmt.Errorf("asset %s: volatility must not be negative", e.Ticker)
		}
		if e.Liquidity < 0 || e.Liquidity > 1 {
			return nil, fmt.Errorf("asset %s: liquidity must be between 0 and 1", e.Ticker)
		}
	}
	return f.Assets, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
