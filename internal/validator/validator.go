package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map. Messages are French:
// they go straight into client-facing responses.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("champ '%s': %s", field, msg))
	}
	return "validation: " + strings.Join(errMsgs, "; ")
}

// Message returns a single client-displayable line, preferring the first
// field error.
func (e *ValidationError) Message() string {
	for field, msg := range e.Errors {
		return fmt.Sprintf("%s : %s", field, msg)
	}
	return "Requête invalide"
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names from json tags so clients see the same
	// camelCase names they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate runs struct validation, returning *ValidationError on rule
// failures.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = errorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Adresse email invalide"
	case "min":
		return fmt.Sprintf("Doit contenir au moins %s caractères", fe.Param())
	case "max":
		return fmt.Sprintf("Doit contenir au plus %s caractères", fe.Param())
	case "oneof":
		return fmt.Sprintf("Doit être parmi : %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Valeur invalide (règle '%s')", fe.Tag())
	}
}
