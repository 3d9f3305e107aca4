package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/go-playground/validator/v10"
)

// validateDecimalPositive проверяет что decimal-поле строго больше нуля. Тег
// required для decimal отсекает только нулевое значение, знак он не видит.
func validateDecimalPositive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("decimal_positive", validateDecimalPositive); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
