package mappers

import (
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/fhir_dto"
	"strings"
)

const maritalStatusUnknownDisplay = "Unknown"

var maritalStatusDisplays = map[string]string{
	"A":   "Annulled",
	"D":   "Divorced",
	"I":   "Interlocutory",
	"L":   "Legally Separated",
	"M":   "Married",
	"P":   "Polygamous",
	"S":   "Never Married",
	"T":   "Domestic partner",
	"U":   "Unmarried",
	"W":   "Widowed",
	"UNK": "Unknown",
}

// BuildMaritalStatus never fails: unknown codes keep the supplied code with display "Unknown".
func BuildMaritalStatus(code string) fhir_dto.Coding {
	display, ok := maritalStatusDisplays[strings.ToUpper(code)]
	if !ok {
		return fhir_dto.Coding{
			System:  constvars.MaritalStatusCodingSystem,
			Code:    code,
			Display: maritalStatusUnknownDisplay,
		}
	}
	return fhir_dto.Coding{
		System:  constvars.MaritalStatusCodingSystem,
		Code:    strings.ToUpper(code),
		Display: display,
	}
}

func BuildMaritalStatusConcept(code string) *fhir_dto.CodeableConcept {
	coding := BuildMaritalStatus(code)
	return &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{coding},
		Text:   coding.Display,
	}
}
