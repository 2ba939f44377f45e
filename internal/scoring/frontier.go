package scoring

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Frontier sweep bounds and default sample count.
const (
	FrontierMinAversion   = 0.5
	FrontierMaxAversion   = 20.0
	DefaultFrontierPoints = 25
	minFrontierPoints     = 2
)

// FrontierPoint is one portfolio on the demo frontier.
type FrontierPoint struct {
	RiskAversion   float64
	Volatility     float64
	ExpectedReturn float64
}

// Frontier traces the demo efficient frontier by re-running the allocation
// over a logarithmic grid of risk aversions. Selection, weighting and the cash
// reserve follow c; its tolerance and horizon are ignored. Points are sorted
// by volatility, then by return.
func Frontier(universe []Asset, c Constraints, points int) ([]FrontierPoint, error) {
	if points < minFrontierPoints {
		return nil, fmt.Errorf("%w: frontier needs at least %d points, got %d", ErrInvalidInput, minFrontierPoints, points)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateUniverse(universe); err != nil {
		return nil, err
	}
	if len(universe) == 0 {
		return []FrontierPoint{}, nil
	}

	grid := floats.LogSpan(make([]float64, points), FrontierMinAversion, FrontierMaxAversion)
	frontier := make([]FrontierPoint, 0, points)
	for _, lambda := range grid {
		alloc := allocate(universe, c, lambda)
		frontier = append(frontier, FrontierPoint{
			RiskAversion:   lambda,
			Volatility:     alloc.Stats.Volatility,
			ExpectedReturn: alloc.Stats.ExpectedReturn,
		})
	}

	sort.SliceStable(frontier, func(i, j int) bool {
		if frontier[i].Volatility != frontier[j].Volatility {
			return frontier[i].Volatility < frontier[j].Volatility
		}
		return frontier[i].ExpectedReturn < frontier[j].ExpectedReturn
	})
	return frontier, nil
}
