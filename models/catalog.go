package models

// CatalogItem is a fixed, runtime-immutable catalog entry.
type CatalogItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Origins is the closed catalog of lead sources.
var Origins = []CatalogItem{
	{ID: "1", Name: "Referencia"},
	{ID: "2", Name: "Orgánico"},
	{ID: "3", Name: "Evento"},
	{ID: "4", Name: "Compra de datos"},
}

// Channels is the closed catalog of interaction channels.
var Channels = []CatalogItem{
	{ID: "1", Name: "WhatsApp"},
	{ID: "2", Name: "Llamada"},
	{ID: "3", Name: "Mail"},
	{ID: "4", Name: "Visita"},
}

// ServiceTypes lists the five business lines in display order.
var ServiceTypes = []ServiceType{
	ServiceContactCenter,
	ServiceCobranzas,
	ServiceRecaudo,
	ServiceAnalitica,
	ServiceDesarrollo,
}

// PipelineStatuses lists the pipeline stages in progression order.
var PipelineStatuses = []ContactStatus{
	StatusProspecto,
	StatusContactado,
	StatusInteresado,
	StatusEnContrato,
	StatusConvertido,
}

// ValidOrigin reports whether name belongs to the origins catalog.
func ValidOrigin(name string) bool {
	for _, o := range Origins {
		if o.Name == name {
			return true
		}
	}
	return false
}

// ValidChannel reports whether name belongs to the channels catalog.
func ValidChannel(name string) bool {
	for _, c := range Channels {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ValidServiceType reports whether s is one of the five business lines.
func ValidServiceType(s ServiceType) bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a pipeline stage.
func ValidStatus(s ContactStatus) bool {
	for _, ps := range PipelineStatuses {
		if ps == s {
			return true
		}
	}
	return false
}
