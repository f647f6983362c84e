package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var academicYearRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

// RegisterValidations adds the custom binding rules used by the request
// structs. Call once at startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("academicyear", func(fl validator.FieldLevel) bool {
			return academicYearRegex.MatchString(fl.Field().String())
		})
	}
}
