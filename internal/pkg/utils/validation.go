package utils

import (
	"fmt"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

// placeholderValue is what API explorers pre-fill for string fields.
const placeholderValue = "string"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("not_placeholder", validateNotPlaceholder)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNotPlaceholder(fl validator.FieldLevel) bool {
	return fl.Field().String() != placeholderValue
}

// ValidatePatientsCsv checks every record and returns all violations found.
// Field names are prefixed with the zero-based row index, e.g. "[2].Identifier".
func ValidatePatientsCsv(records []requests.PatientCsv) []exceptions.FieldError {
	var fieldErrors []exceptions.FieldError
	for i := range records {
		err := ValidateStruct(&records[i])
		if err == nil {
			continue
		}
		fieldErrors = append(fieldErrors, exceptions.FieldErrorsFromValidation(err, fmt.Sprintf("[%d].", i))...)
	}
	return fieldErrors
}

func ValidatePatientRequest(request *requests.PatientRequest) []exceptions.FieldError {
	if request == nil {
		return []exceptions.FieldError{{Field: "request", Message: "request is required"}}
	}
	return exceptions.FieldErrorsFromValidation(ValidateStruct(request), "")
}
