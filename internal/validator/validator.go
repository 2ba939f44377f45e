// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"yemalin/internal/models"
	"yemalin/internal/scoring"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("horizon", validateHorizon)
		_ = v.RegisterValidation("weighting", validateWeighting)
		_ = v.RegisterValidation("asset_class", validateAssetClass)
	}
}

func validateHorizon(fl validator.FieldLevel) bool {
	return scoring.Horizon(fl.Field().String()).Valid()
}

func validateWeighting(fl validator.FieldLevel) bool {
	switch scoring.Weighting(fl.Field().String()) {
	case scoring.WeightingProportional, scoring.WeightingEqual:
		return true
	}
	return false
}

func validateAssetClass(fl validator.FieldLevel) bool {
	return models.AssetClass(fl.Field().String()).Valid()
}
