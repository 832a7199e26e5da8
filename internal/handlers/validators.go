package handlers

import (
	"fmt"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request structs.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("reaction", validateReaction)
}

// validateReaction parses the value the same way the service does
func validateReaction(fl validator.FieldLevel) bool {
	_, err := models.ParseReactionType(fl.Field().String())
	return err == nil
}
