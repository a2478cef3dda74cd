package exceptions

import (
	"errors"
	"patient-sync-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrorsFromValidation converts validator errors into field+message pairs.
// The prefix is prepended to each field name, e.g. "[3]." for the fourth row of a batch.
func FieldErrorsFromValidation(err error, prefix string) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err == nil {
			return nil
		}
		return []FieldError{{Field: prefix, Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   prefix + fieldErr.Field(),
			Message: strings.ToLower(fieldErr.Field()) + " " + messageForTag(fieldErr),
		})
	}
	return fieldErrors
}

func FormatAllValidationErrors(err error) string {
	fieldErrors := FieldErrorsFromValidation(err, "")
	if len(fieldErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		messages = append(messages, fieldErr.Message)
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	fieldErrors := FieldErrorsFromValidation(err, "")
	if len(fieldErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return fieldErrors[0].Message
}

func messageForTag(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}
