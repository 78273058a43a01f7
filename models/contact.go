package models

import "time"

// ContactStatus is the 5-stage sales pipeline. The model does not enforce
// a transition order: any status may be set on any update.
type ContactStatus string

const (
	StatusProspecto  ContactStatus = "Prospecto"
	StatusContactado ContactStatus = "Contactado"
	StatusInteresado ContactStatus = "Interesado"
	StatusEnContrato ContactStatus = "En Contrato"
	StatusConvertido ContactStatus = "Convertido"
)

// ServiceType is a line of business a contact is categorized under.
type ServiceType string

const (
	ServiceContactCenter ServiceType = "Contact Center"
	ServiceCobranzas     ServiceType = "Cobranzas"
	ServiceRecaudo       ServiceType = "Recaudo"
	ServiceAnalitica     ServiceType = "Analítica"
	ServiceDesarrollo    ServiceType = "Desarrollo de Software"
)

type Contact struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"owner_id"`
	Name          string        `json:"name"`
	CompanyName   string        `json:"company_name"`
	Role          *string       `json:"role,omitempty"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Website       *string       `json:"website,omitempty"`
	Origin        string        `json:"origin"`
	ServiceType   ServiceType   `json:"service_type"`
	ContractValue *float64      `json:"contract_value,omitempty"`
	Status        ContactStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
