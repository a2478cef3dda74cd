package fhir_dto

import (
	"patient-sync-service/internal/pkg/constvars"
	"strings"

	"github.com/goccy/go-json"
)

// Patient is the canonical patient resource. Birth place and citizenship are
// held as explicit optional fields and only become extensions on the wire.
type Patient struct {
	ResourceType         string           `json:"resourceType"`
	ID                   string           `json:"id,omitempty"`
	Meta                 *Meta            `json:"meta,omitempty"`
	Active               bool             `json:"active"`
	Identifier           []Identifier     `json:"identifier,omitempty"`
	Name                 []HumanName      `json:"name,omitempty"`
	Telecom              []ContactPoint   `json:"telecom,omitempty"`
	Gender               string           `json:"gender,omitempty"`
	BirthDate            string           `json:"birthDate,omitempty"`
	Address              []Address        `json:"address,omitempty"`
	MaritalStatus        *CodeableConcept `json:"maritalStatus,omitempty"`
	ManagingOrganization *Reference       `json:"managingOrganization,omitempty"`

	BirthPlace  *Address     `json:"-"`
	Citizenship *Citizenship `json:"-"`

	// Extension keeps any other extension the registry returned so updates do not drop it.
	Extension []Extension `json:"extension,omitempty"`
}

type Citizenship struct {
	Code   CodeableConcept
	Period Period
}

type patientWire Patient

func (p Patient) MarshalJSON() ([]byte, error) {
	wire := patientWire(p)
	wire.Extension = make([]Extension, 0, len(p.Extension)+2)
	for _, ext := range p.Extension {
		if isBirthPlaceURL(ext.Url) || isCitizenshipURL(ext.Url) {
			continue
		}
		wire.Extension = append(wire.Extension, ext)
	}
	if p.BirthPlace != nil {
		birthPlace := *p.BirthPlace
		wire.Extension = append(wire.Extension, Extension{
			Url:          constvars.BirthPlaceExtensionURL,
			ValueAddress: &birthPlace,
		})
	}
	if p.Citizenship != nil {
		code := p.Citizenship.Code
		period := p.Citizenship.Period
		wire.Extension = append(wire.Extension, Extension{
			Url: constvars.CitizenshipExtensionURL,
			Extension: []Extension{
				{Url: constvars.CitizenshipSubExtensionCode, ValueCodeableConcept: &code},
				{Url: constvars.CitizenshipSubExtensionPeriod, ValuePeriod: &period},
			},
		})
	}
	if len(wire.Extension) == 0 {
		wire.Extension = nil
	}
	if wire.ResourceType == "" {
		wire.ResourceType = constvars.ResourcePatient
	}
	return json.Marshal(wire)
}

func (p *Patient) UnmarshalJSON(data []byte) error {
	var wire patientWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = Patient(wire)
	p.Extension = nil
	for _, ext := range wire.Extension {
		switch {
		case isBirthPlaceURL(ext.Url):
			if p.BirthPlace == nil && ext.ValueAddress != nil {
				birthPlace := *ext.ValueAddress
				p.BirthPlace = &birthPlace
			}
		case isCitizenshipURL(ext.Url):
			if p.Citizenship == nil {
				p.Citizenship = citizenshipFromExtension(ext)
			}
		default:
			p.Extension = append(p.Extension, ext)
		}
	}
	return nil
}

func citizenshipFromExtension(ext Extension) *Citizenship {
	citizenship := &Citizenship{}
	for _, sub := range ext.Extension {
		switch sub.Url {
		case constvars.CitizenshipSubExtensionCode:
			if sub.ValueCodeableConcept != nil {
				citizenship.Code = *sub.ValueCodeableConcept
			}
		case constvars.CitizenshipSubExtensionPeriod:
			if sub.ValuePeriod != nil {
				citizenship.Period = *sub.ValuePeriod
			}
		}
	}
	return citizenship
}

func isBirthPlaceURL(url string) bool {
	return strings.HasSuffix(url, constvars.BirthPlaceURLSuffix)
}

func isCitizenshipURL(url string) bool {
	return strings.HasSuffix(url, constvars.CitizenshipURLSuffix)
}

// IdentifierValue returns the value of the first identifier in the given system.
func (p *Patient) IdentifierValue(system string) string {
	for _, identifier := range p.Identifier {
		if identifier.System == system {
			return identifier.Value
		}
	}
	return ""
}

// OfficialName returns the official name, falling back to the first name entry.
func (p *Patient) OfficialName() *HumanName {
	for i := range p.Name {
		if p.Name[i].Use == constvars.FhirNameUseOfficial {
			return &p.Name[i]
		}
	}
	if len(p.Name) > 0 {
		return &p.Name[0]
	}
	return nil
}
