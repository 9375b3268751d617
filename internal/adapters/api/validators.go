package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherwidget.app/pkg/validation"
)

var registerOnce sync.Once

// validateUnits accepts F or C in either case
func validateUnits(fl validator.FieldLevel) bool {
	return validation.IsValidUnits(normalizeUnits(fl.Field().String()))
}

// RegisterValidators adds the custom binding tags to gin's validator
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = v.RegisterValidation("units", validateUnits)
		}
	})
	return err
}
