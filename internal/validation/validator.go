// Package validation provides custom validators for the application
package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"forecast24/internal/models"
)

// Initialize registers all custom validators
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("area", validateArea)
		if err != nil {
			panic(err)
		}
	}
}

// validateArea checks that a string is one of the five known price areas
func validateArea(fl validator.FieldLevel) bool {
	return models.Area(fl.Field().String()).Valid()
}
