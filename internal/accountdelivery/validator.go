package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/teller-bank/internal/domain"
)

// ValidAccountKind validates whether the account kind is supported.
var ValidAccountKind validator.Func = func(fl validator.FieldLevel) bool {
	if kind, ok := fl.Field().Interface().(string); ok {
		return domain.IsSupportedKind(kind)
	}

	return false
}
