package requests

type ObservationRequest struct {
	Value float64 `json:"value" validate:"gt=0"`
}
