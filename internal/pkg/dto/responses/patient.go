package responses

type PatientDetail struct {
	ID              string         `json:"id"`
	Identifier      string         `json:"identifier"`
	Prefix          string         `json:"prefix"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	BirthDate       string         `json:"birth_date"`
	BirthPlace      string         `json:"birth_place"`
	Citizenship     string         `json:"citizenship"`
	CitizenshipCode string         `json:"citizenship_code"`
	Gender          string         `json:"gender"`
	MaritalStatus   *MaritalStatus `json:"marital_status,omitempty"`
	Address         *AddressDetail `json:"address,omitempty"`
}

type AddressDetail struct {
	PostalCode string   `json:"postal_code"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Type       string   `json:"type"`
	Line       []string `json:"line"`
}

type MaritalStatus struct {
	System  string `json:"system"`
	Code    string `json:"code"`
	Display string `json:"display"`
}
