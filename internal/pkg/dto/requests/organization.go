package requests

type OrganizationRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Name       string `json:"name" validate:"required,not_placeholder"`
	Phone      string `json:"phone"`
}
