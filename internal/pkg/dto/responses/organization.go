package responses

type Organization struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Active     bool   `json:"active"`
}
