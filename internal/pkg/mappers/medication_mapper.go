package mappers

import (
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
)

func BuildMedicationResponse(medication *fhir_dto.Medication) responses.Medication {
	response := responses.Medication{
		ID:     medication.ID,
		Status: medication.Status,
	}
	if medication.Code != nil {
		response.Display = medication.Code.Text
		if len(medication.Code.Coding) > 0 {
			response.Code = medication.Code.Coding[0].Code
			if response.Display == "" {
				response.Display = medication.Code.Coding[0].Display
			}
		}
	}
	return response
}

func BuildMedicationResponses(medications []fhir_dto.Medication) []responses.Medication {
	result := make([]responses.Medication, 0, len(medications))
	for i := range medications {
		result = append(result, BuildMedicationResponse(&medications[i]))
	}
	return result
}
