package config

import (
	"FileRelayAPI/internal/constant"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("expiration", validateExpiration)
	return v
}

func validateExpiration(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, e := range constant.Expirations {
		if value == string(e) {
			return true
		}
	}
	return false
}
