package scoring

import "math"

// Horizon is the investment horizon of the investor.
type Horizon string

const (
	HorizonShort  Horizon = "short"
	HorizonMedium Horizon = "medium"
	HorizonLong   Horizon = "long"
)

// Valid reports whether h is a known horizon.
func (h Horizon) Valid() bool {
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong:
		return true
	}
	return false
}

// Factor scales risk aversion: shorter horizons penalise volatility harder.
func (h Horizon) Factor() float64 {
	switch h {
	case HorizonShort:
		return 1.2
	case HorizonLong:
		return 0.8
	default:
		return 1.0
	}
}

// Risk tolerance bounds.
const (
	MinRiskTolerance = 1
	MaxRiskTolerance = 5
)

// aversionByTolerance maps tolerance levels 1..5 to risk aversion.
var aversionByTolerance = [...]float64{8.0, 4.0, 2.5, 1.7, 1.2}

// RiskAversion converts a tolerance in [1,5] and a horizon into the lambda used
// by Score. Integer tolerances hit the table exactly; fractional ones are
// interpolated linearly. Out-of-range tolerances are clamped.
func RiskAversion(tolerance float64, h Horizon) float64 {
	t := math.Min(math.Max(tolerance, MinRiskTolerance), MaxRiskTolerance)
	lo := int(math.Floor(t)) - MinRiskTolerance
	var base float64
	if lo >= len(aversionByTolerance)-1 {
		base = aversionByTolerance[len(aversionByTolerance)-1]
	} else {
		frac := t - math.Floor(t)
		base = aversionByTolerance[lo] + frac*(aversionByTolerance[lo+1]-aversionByTolerance[lo])
	}
	return base * h.Factor()
}
