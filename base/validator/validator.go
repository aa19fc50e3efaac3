package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RegisterCustomValidations adds the domain validations used by the api
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("futuretime", isFutureTime)
}

// isFutureTime validates that a time.Time field is strictly after now
func isFutureTime(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
