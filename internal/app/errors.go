package app

import (
	"errors"
	"strings"

	appvalidator "github.com/ekinoks/cinema-booking-core/internal/validator"
	"github.com/go-playground/validator/v10"
)

// ValidationError reports which input fields were rejected and why. The API
// layer translates it to its transport format.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")

	for field, issue := range e.Fields {
		sb.WriteString(" ")
		sb.WriteString(field)
		sb.WriteString(" ")
		sb.WriteString(issue)
		sb.WriteString(";")
	}

	return strings.TrimSuffix(sb.String(), ";")
}

func (app *Application) validate(input any) error {
	err := app.validator.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = appvalidator.ValidationMessage(fieldErr)
	}

	return &ValidationError{Fields: fields}
}
