// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validCurrencies contains the currency codes supported by profiles.
var validCurrencies = map[string]bool{
	"BDT": true, "USD": true, "EUR": true, "GBP": true, "INR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", validateCurrency)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("expense_status", validateExpenseStatus)
		_ = v.RegisterValidation("recurrence", validateRecurrence)
		_ = v.RegisterValidation("task_importance", validateTaskImportance)
		_ = v.RegisterValidation("task_status", validateTaskStatus)
		_ = v.RegisterValidation("date_range", validateDateRange)
	}
}

func validateCurrency(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateExpenseStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "completed", "pending", "upcoming":
		return true
	}
	return false
}

func validateRecurrence(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "one-time", "daily", "weekly", "monthly":
		return true
	}
	return false
}

func validateTaskImportance(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateTaskStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "todo", "inprogress", "done":
		return true
	}
	return false
}

func validateDateRange(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "week", "month", "year":
		return true
	}
	return false
}
