package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskAversion(t *testing.T) {
	tests := []struct {
		tolerance float64
		horizon   Horizon
		want      float64
	}{
		{1, HorizonMedium, 8.0},
		{2, HorizonMedium, 4.0},
		{3, HorizonMedium, 2.5},
		{4, HorizonMedium, 1.7},
		{5, HorizonMedium, 1.2},
		{3.5, HorizonMedium, 2.1},
		{1, HorizonShort, 9.6},
		{5, HorizonLong, 0.96},
		{0, HorizonMedium, 8.0},
		{7, HorizonMedium, 1.2},
	}

	for _, tt := range tests {
		got := RiskAversion(tt.tolerance, tt.horizon)
		assert.InDelta(t, tt.want, got, 1e-9, "tolerance=%g horizon=%s", tt.tolerance, tt.horizon)
	}
}

func TestRiskAversion_DecreasesWithTolerance(t *testing.T) {
	prev := RiskAversion(1, HorizonMedium)
	for tol := 1.25; tol <= 5; tol += 0.25 {
		cur := RiskAversion(tol, HorizonMedium)
		assert.Less(t, cur, prev, "tolerance %g", tol)
		prev = cur
	}
}

func TestHorizon_Valid(t *testing.T) {
	assert.True(t, HorizonShort.Valid())
	assert.True(t, HorizonMedium.Valid())
	assert.True(t, HorizonLong.Valid())
	assert.False(t, Horizon("").Valid())
	assert.False(t, Horizon("decade").Valid())
}
