package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires request-level validators into gin's binding
// engine. Call once at startup.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// planmonth: fiscal month selector, 1-12.
	_ = v.RegisterValidation("planmonth", func(fl validator.FieldLevel) bool {
		month := fl.Field().Int()
		return month >= 1 && month <= 12
	})
}
