package request

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Italian-style plates plus a permissive fallback for foreign vehicles.
var platePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{3,9}$`)

// RegisterCustomValidators hooks the "plate" tag into gin's binding
// engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
		return platePattern.MatchString(fl.Field().String())
	})
}
