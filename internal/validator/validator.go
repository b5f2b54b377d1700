package validator

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var seatRowRgx = regexp.MustCompile(`^[A-Z]{1,3}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	// Expose decimal amounts to the numeric validations (gt, gte, ...).
	validator.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	validator.RegisterValidation("seat_row", validateSeatRow)

	return validator
}

func decimalToFloat(field reflect.Value) interface{} {
	amount, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	value, _ := amount.Float64()

	return value
}

func validateSeatRow(fl validator.FieldLevel) bool {
	return seatRowRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", err.Param())
	case "min":
		return fmt.Sprintf("must have at least %s elements", err.Param())
	case "max":
		return fmt.Sprintf("must have at most %s elements", err.Param())
	case "seat_row":
		return "must be one to three uppercase letters"
	default:
		return "is invalid"
	}
}
