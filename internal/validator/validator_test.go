package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Horizon   string `validate:"horizon"`
	Weighting string `validate:"omitempty,weighting"`
	Class     string `validate:"omitempty,asset_class"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"horizon":     validateHorizon,
		"weighting":   validateWeighting,
		"asset_class": validateAssetClass,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("failed to register %s: %v", tag, err)
		}
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"all valid", sample{Horizon: "long", Weighting: "equal", Class: "bond"}, true},
		{"optional fields empty", sample{Horizon: "short"}, true},
		{"unknown horizon", sample{Horizon: "eternity"}, false},
		{"empty horizon", sample{}, false},
		{"unknown weighting", sample{Horizon: "medium", Weighting: "inverse_vol"}, false},
		{"unknown class", sample{Horizon: "medium", Class: "crypto"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
