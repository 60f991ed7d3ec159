// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("asset_type_filter", validateAssetTypeFilter)
		_ = v.RegisterValidation("risk_level", validateRiskLevel)
	}
}

func validateAssetType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "bond", "fd", "mutual_fund", "etf", "govt_scheme", "sip", "basket":
		return true
	}
	return false
}

// validateAssetTypeFilter additionally accepts the "all" sentinel used by
// the explorer to mean no asset type constraint.
func validateAssetTypeFilter(fl validator.FieldLevel) bool {
	if fl.Field().String() == "all" {
		return true
	}
	return validateAssetType(fl)
}

func validateRiskLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}
