package requests

// PatientCsv is one row of an imported patient table.
type PatientCsv struct {
	Nr                  string `csv:"Nr" validate:"required"`
	Prefix              string `csv:"Prefix"`
	Identifier          string `csv:"Identifier" validate:"required"`
	FirstName           string `csv:"FirstName" validate:"required"`
	LastName            string `csv:"LastName" validate:"required"`
	BirthDate           string `csv:"BirthDate" validate:"required"`
	BirthPlace          string `csv:"BirthPlace"`
	CitizenshipCode     string `csv:"CitizenshipCode"`
	Gender              string `csv:"Gender"`
	AddressStreetName   string `csv:"AddressStreetName"`
	AddressStreetNo     string `csv:"AddressStreetNo"`
	AddressAppartmentNo string `csv:"AddressAppartmentNo"`
	AddressPostalCode   string `csv:"AddressPostalCode"`
	AddressCity         string `csv:"AddressCity"`
	AddressCountry      string `csv:"AddressCountry"`
	AddressType         string `csv:"AddressType"`
}

type PatientRequest struct {
	Identifier      string          `json:"identifier"`
	Prefix          string          `json:"prefix"`
	FirstName       string          `json:"first_name" validate:"required,not_placeholder"`
	LastName        string          `json:"last_name" validate:"required,not_placeholder"`
	BirthDate       string          `json:"birth_date"`
	BirthPlace      string          `json:"birth_place"`
	CitizenshipCode string          `json:"citizenship_code"`
	Gender          string          `json:"gender"`
	Address         *AddressRequest `json:"address"`
}

type AddressRequest struct {
	StreetName   string `json:"street_name"`
	StreetNo     string `json:"street_no"`
	AppartmentNo string `json:"appartment_no"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Type         string `json:"type"`
}
