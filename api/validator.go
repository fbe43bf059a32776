package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/greencycle/wastehub/algorithm"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/util"
)

// registerCustomValidators registers the domain enum validators
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("wasteCategory", validWasteCategory)
		v.RegisterValidation("requestType", validRequestType)
		v.RegisterValidation("urgency", validUrgency)
		v.RegisterValidation("role", validRole)
	}
}

var validWasteCategory validator.Func = func(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch category {
	case db.WasteCategoryOrganic, db.WasteCategoryPlastic, db.WasteCategoryMetal,
		db.WasteCategoryPaper, db.WasteCategoryGlass, db.WasteCategoryOther:
		return true
	}
	return false
}

var validRequestType validator.Func = func(fl validator.FieldLevel) bool {
	requestType, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch requestType {
	case algorithm.RequestTypeNormal, algorithm.RequestTypeSpecialEquipped, algorithm.RequestTypeHazardous,
		algorithm.RequestTypeBulkyItems, algorithm.RequestTypeElectronicWaste:
		return true
	}
	return false
}

var validUrgency validator.Func = func(fl validator.FieldLevel) bool {
	urgency, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch urgency {
	case algorithm.UrgencyLow, algorithm.UrgencyMedium, algorithm.UrgencyHigh:
		return true
	}
	return false
}

var validRole validator.Func = func(fl validator.FieldLevel) bool {
	role, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return util.IsSupportedRole(role)
}
