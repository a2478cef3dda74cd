package responses

type Medication struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Display string `json:"display"`
	Status  string `json:"status,omitempty"`
}
