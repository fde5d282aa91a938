package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/geo-registry/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры запроса; ошибки схлопываются в INVALID_REQUEST
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return errors.ErrInvalidRequest.WithMessage(verrs[0].Error())
		}
		return errors.ErrInvalidRequest
	}
	return nil
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
