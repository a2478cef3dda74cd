package mappers

import (
	"fmt"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"
)

func PatientReference(patientID string) *fhir_dto.Reference {
	return &fhir_dto.Reference{Reference: fmt.Sprintf("%s/%s", constvars.ResourcePatient, patientID)}
}

// BuildFhirObservation renders a laboratory measurement for the given patient.
func BuildFhirObservation(base models.ObservationBase, patientID string) *fhir_dto.Observation {
	return &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		ID:           base.ID,
		Identifier: []fhir_dto.Identifier{{
			System: constvars.ObservationSequenceNoSystem,
			Value:  constvars.ObservationDefaultSequenceNo,
		}},
		Status: constvars.FhirObservationStatusFinal,
		Category: []fhir_dto.CodeableConcept{{
			Coding: []fhir_dto.Coding{{
				System:  constvars.ObservationCategorySystem,
				Code:    constvars.ObservationCategoryCode,
				Display: constvars.ObservationCategoryDisplay,
			}},
		}},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  base.Kind.System,
				Code:    base.Kind.Code,
				Display: base.Kind.Name,
			}},
			Text: base.Kind.Name,
		},
		Subject:           PatientReference(patientID),
		EffectiveDateTime: utils.FormatFhirDateTime(base.Effective),
		ValueQuantity: &fhir_dto.Quantity{
			Value: base.Value,
			Unit:  base.Kind.Unit,
			Code:  base.Kind.Unit,
		},
	}
}

func HasObservationCode(observation *fhir_dto.Observation, system, code string) bool {
	for _, coding := range observation.Code.Coding {
		if coding.System == system && coding.Code == code {
			return true
		}
	}
	return false
}

func BuildObservationResponse(observation *fhir_dto.Observation) responses.Observation {
	response := responses.Observation{
		ID:        observation.ID,
		Name:      observation.Code.Text,
		Effective: utils.ParseFhirDateTime(observation.EffectiveDateTime),
	}
	if len(observation.Code.Coding) > 0 {
		response.System = observation.Code.Coding[0].System
		response.Code = observation.Code.Coding[0].Code
	}
	if observation.ValueQuantity != nil {
		response.Unit = observation.ValueQuantity.Code
		response.Value = observation.ValueQuantity.Value
	}
	return response
}

func BuildObservationResponses(observations []fhir_dto.Observation) []responses.Observation {
	result := make([]responses.Observation, 0, len(observations))
	for i := range observations {
		result = append(result, BuildObservationResponse(&observations[i]))
	}
	return result
}
