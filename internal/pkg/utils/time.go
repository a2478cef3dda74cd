package utils

import (
	"patient-sync-service/internal/pkg/constvars"
	"time"
)

// ConvertDayMonthYearToISO reformats a dd/MM/yyyy date into yyyy-MM-dd.
func ConvertDayMonthYearToISO(value string) (string, error) {
	parsed, err := time.Parse(constvars.DateFormatDayMonthYear, value)
	if err != nil {
		return "", err
	}
	return parsed.Format(constvars.DateFormatISO), nil
}

// FormatFhirDateTime renders t the way the registry stores dateTime values.
func FormatFhirDateTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseFhirDateTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
