// Package scoring implements the demo allocation model: a single-pass,
// side-effect-free ranking of candidate assets by risk-adjusted return.
//
// It stands in for the full optimisation engine and deliberately ignores
// covariance; portfolio volatility is reported as a weighted average.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidInput is wrapped by every validation failure returned from this package.
var ErrInvalidInput = errors.New("invalid input")

// ClassMoneyMarket marks the cash instrument of a universe.
const ClassMoneyMarket = "money_market"

// CashTicker identifies the synthetic cash line used when the universe has no
// money-market instrument.
const CashTicker = "CASH"

// ratioEpsilon keeps the return/risk ratio finite for an all-cash portfolio.
const ratioEpsilon = 1e-6

// Weighting selects how selected assets share the risky budget.
type Weighting string

const (
	WeightingProportional Weighting = "proportional"
	WeightingEqual        Weighting = "equal"
)

// Asset is a candidate instrument.
type Asset struct {
	Ticker         string
	Name           string
	Class          string
	ExpectedReturn float64
	Volatility     float64
	Liquidity      float64
}

// IsCash reports whether the asset is the universe's cash instrument.
func (a Asset) IsCash() bool {
	return a.Class == ClassMoneyMarket
}

// Constraints is the per-invocation investor input.
type Constraints struct {
	RiskTolerance float64 // 1 (cautious) to 5 (aggressive)
	Horizon       Horizon
	MaxAssets     int
	MinLiquidity  float64 // 0 to 1
	CashReserve   float64 // 0 to MaxCashReserve
	Weighting     Weighting
	Amount        float64
}

// MaxCashReserve is the largest fraction that may be parked in cash.
const MaxCashReserve = 0.5

// Line is one row of an allocation.
type Line struct {
	Asset  Asset
	Score  float64
	Weight float64
	Amount float64
}

// Stats summarises an allocation.
type Stats struct {
	ExpectedReturn float64
	Volatility     float64
	Ratio          float64
	CashAmount     float64
}

// Allocation is the result of a scoring run. Lines are ranked by score,
// best first. Cash is nil when no reserve was requested or the universe
// was empty.
type Allocation struct {
	Lines        []Line
	Cash         *Line
	RiskAversion float64
	// Unallocated is the part of the risky budget left uninvested because no
	// asset passed the liquidity threshold.
	Unallocated float64
	Stats       Stats
}

// Empty reports whether the allocation was computed over an empty universe.
func (a Allocation) Empty() bool {
	return len(a.Lines) == 0 && a.Cash == nil && a.Unallocated == 0
}

// RiskyWeight returns the summed weight of the ranked lines.
func (a Allocation) RiskyWeight() float64 {
	var sum float64
	for _, l := range a.Lines {
		sum += l.Weight
	}
	return sum
}

// TotalWeight returns the summed weight of every line including cash.
func (a Allocation) TotalWeight() float64 {
	total := a.RiskyWeight()
	if a.Cash != nil {
		total += a.Cash.Weight
	}
	return total
}

// Validate checks the constraint set.
func (c Constraints) Validate() error {
	switch {
	case math.IsNaN(c.RiskTolerance) || c.RiskTolerance < MinRiskTolerance || c.RiskTolerance > MaxRiskTolerance:
		return fmt.Errorf("%w: risk tolerance must be between %d and %d, got %g",
			ErrInvalidInput, MinRiskTolerance, MaxRiskTolerance, c.RiskTolerance)
	case !c.Horizon.Valid():
		return fmt.Errorf("%w: unknown horizon %q", ErrInvalidInput, c.Horizon)
	case c.MaxAssets <= 0:
		return fmt.Errorf("%w: maximum asset count must be positive, got %d", ErrInvalidInput, c.MaxAssets)
	case math.IsNaN(c.MinLiquidity) || c.MinLiquidity < 0 || c.MinLiquidity > 1:
		return fmt.Errorf("%w: minimum liquidity must be between 0 and 1, got %g", ErrInvalidInput, c.MinLiquidity)
	case math.IsNaN(c.CashReserve) || c.CashReserve < 0 || c.CashReserve > MaxCashReserve:
		return fmt.Errorf("%w: cash reserve must be between 0 and %g, got %g", ErrInvalidInput, MaxCashReserve, c.CashReserve)
	case c.Weighting != "" && c.Weighting != WeightingProportional && c.Weighting != WeightingEqual:
		return fmt.Errorf("%w: unknown weighting scheme %q", ErrInvalidInput, c.Weighting)
	case math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) || c.Amount <= 0:
		return fmt.Errorf("%w: investable amount must be positive, got %g", ErrInvalidInput, c.Amount)
	}
	return nil
}

// ValidateUniverse checks that every asset is well formed and tickers are unique.
func ValidateUniverse(universe []Asset) error {
	seen := make(map[string]struct{}, len(universe))
	for i, a := range universe {
		if a.Ticker == "" {
			return fmt.Errorf("%w: asset %d has no ticker", ErrInvalidInput, i)
		}
		if _, dup := seen[a.Ticker]; dup {
			return fmt.Errorf("%w: duplicate ticker %s", ErrInvalidInput, a.Ticker)
		}
		seen[a.Ticker] = struct{}{}

		if !finite(a.ExpectedReturn) || !finite(a.Volatility) || !finite(a.Liquidity) {
			return fmt.Errorf("%w: %s has a non-finite attribute", ErrInvalidInput, a.Ticker)
		}
		if a.Volatility < 0 {
			return fmt.Errorf("%w: %s has negative volatility", ErrInvalidInput, a.Ticker)
		}
		if a.Liquidity < 0 || a.Liquidity > 1 {
			return fmt.Errorf("%w: %s liquidity must be between 0 and 1, got %g", ErrInvalidInput, a.Ticker, a.Liquidity)
		}
	}
	return nil
}

// Score returns the risk-adjusted score of an asset for risk aversion lambda.
func Score(a Asset, lambda float64) float64 {
	return a.ExpectedReturn - lambda*a.Volatility*a.Volatility
}

// Allocate ranks the universe under the given constraints and assigns weights.
//
// An empty universe yields an empty allocation. When no risky asset meets the
// liquidity threshold the cash line is still returned and the risky budget is
// reported in Allocation.Unallocated.
func Allocate(universe []Asset, c Constraints) (Allocation, error) {
	if err := c.Validate(); err != nil {
		return Allocation{}, err
	}
	if err := ValidateUniverse(universe); err != nil {
		return Allocation{}, err
	}
	return allocate(universe, c, RiskAversion(c.RiskTolerance, c.Horizon)), nil
}

func allocate(universe []Asset, c Constraints, lambda float64) Allocation {
	alloc := Allocation{RiskAversion: lambda}
	if len(universe) == 0 {
		return alloc
	}

	riskyBudget := 1 - c.CashReserve
	alloc.Lines = selectLines(universe, c, lambda)
	if len(alloc.Lines) == 0 {
		alloc.Unallocated = riskyBudget
	} else {
		weights := assignWeights(alloc.Lines, c.Weighting)
		floats.Scale(riskyBudget, weights)
		for i := range alloc.Lines {
			alloc.Lines[i].Weight = weights[i]
			alloc.Lines[i].Amount = weights[i] * c.Amount
		}
	}

	if c.CashReserve > 0 {
		cash := cashInstrument(universe)
		alloc.Cash = &Line{
			Asset:  cash,
			Score:  Score(cash, lambda),
			Weight: c.CashReserve,
			Amount: c.CashReserve * c.Amount,
		}
	}

	alloc.Stats = summarise(alloc)
	return alloc
}

// selectLines filters, scores and ranks the risky assets, keeping the best MaxAssets.
func selectLines(universe []Asset, c Constraints, lambda float64) []Line {
	lines := make([]Line, 0, len(universe))
	for _, a := range universe {
		if a.IsCash() || a.Liquidity < c.MinLiquidity {
			continue
		}
		lines = append(lines, Line{Asset: a, Score: Score(a, lambda)})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Score != lines[j].Score {
			return lines[i].Score > lines[j].Score
		}
		return lines[i].Asset.Ticker < lines[j].Asset.Ticker
	})

	if len(lines) > c.MaxAssets {
		lines = lines[:c.MaxAssets]
	}
	return lines
}

// assignWeights returns weights summing to one for the ranked lines.
func assignWeights(lines []Line, scheme Weighting) []float64 {
	weights := make([]float64, len(lines))
	if scheme != WeightingEqual {
		for i, l := range lines {
			weights[i] = math.Max(l.Score, 0)
		}
		if total := floats.Sum(weights); total > 0 {
			floats.Scale(1/total, weights)
			return weights
		}
	}
	for i := range weights {
		weights[i] = 1 / float64(len(weights))
	}
	return weights
}

// cashInstrument returns the first money-market asset, or a synthetic
// zero-return cash asset.
func cashInstrument(universe []Asset) Asset {
	for _, a := range universe {
		if a.IsCash() {
			return a
		}
	}
	return Asset{Ticker: CashTicker, Name: "Cash", Class: ClassMoneyMarket, Liquidity: 1}
}

func summarise(alloc Allocation) Stats {
	n := len(alloc.Lines)
	if alloc.Cash != nil {
		n++
	}
	weights := make([]float64, 0, n)
	returns := make([]float64, 0, n)
	vols := make([]float64, 0, n)
	for _, l := range alloc.Lines {
		weights = append(weights, l.Weight)
		returns = append(returns, l.Asset.ExpectedReturn)
		vols = append(vols, l.Asset.Volatility)
	}
	var stats Stats
	if alloc.Cash != nil {
		weights = append(weights, alloc.Cash.Weight)
		returns = append(returns, alloc.Cash.Asset.ExpectedReturn)
		vols = append(vols, alloc.Cash.Asset.Volatility)
		stats.CashAmount = alloc.Cash.Amount
	}

	stats.ExpectedReturn = floats.Dot(weights, returns)
	stats.Volatility = floats.Dot(weights, vols)
	stats.Ratio = stats.ExpectedReturn / (stats.Volatility + ratioEpsilon)
	return stats
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
