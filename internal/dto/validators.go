package dto

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the request validation tags used by the DTOs.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("denomination", func(fl validator.FieldLevel) bool {
		return domain.IsDenomination(int(fl.Field().Int()))
	})
}
