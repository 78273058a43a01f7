package database

import (
	"time"

	"axis-server/models"
)

// Collection keys. The store is a key-value surface over whole
// collections; partial updates are not part of the contract.
const (
	KeyUsers        = "axis_users_v1"
	KeyContacts     = "axis_contacts_v1"
	KeyTasks        = "axis_tasks_v1"
	KeyInteractions = "axis_interactions_v1"
	KeyGoals        = "axis_master_goals_v3"
)

// Store is the persistence port the handlers depend on. Collections are
// read and written whole. PutTasksAndInteractions is the one atomic
// dual-collection write: completing a task must never leave the task
// updated without its synthesized interaction, or the reverse.
type Store interface {
	GetUsers() ([]models.UserAccount, error)
	PutUsers([]models.UserAccount) error

	GetContacts() ([]models.Contact, error)
	PutContacts([]models.Contact) error

	GetTasks() ([]models.Task, error)
	PutTasks([]models.Task) error

	GetInteractions() ([]models.Interaction, error)
	PutInteractions([]models.Interaction) error

	GetGoals() (models.GoalBook, error)
	PutGoals(models.GoalBook) error

	PutTasksAndInteractions([]models.Task, []models.Interaction) error
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// SeedUsers are the accounts hydrated on first use.
func SeedUsers() []models.UserAccount {
	return []models.UserAccount{
		{ID: "u1", Name: "Administrador Principal", Email: "admin@axis.com", Role: models.RoleAdmin},
		{ID: "u2", Name: "Carlos Comercial", Email: "carlos@axis.com", Role: models.RoleUser},
		{ID: "u3", Name: "Ana Ventas", Email: "ana@axis.com", Role: models.RoleUser},
	}
}

// SeedContacts are the demo leads hydrated on first use.
func SeedContacts() []models.Contact {
	return []models.Contact{
		{
			ID: "c1", OwnerID: "u2",
			Name: "Juan Pérez", CompanyName: "Tech Innovators", Role: ptr("CTO"),
			Phone: "+52 55 1234 5678", Email: "juan@tech.com", Website: ptr("tech.com"),
			Origin: "Referencia", ServiceType: models.ServiceDesarrollo,
			ContractValue: ptr(50000.0), Status: models.StatusProspecto,
			CreatedAt: mustTime("2024-01-10T10:00:00Z"), UpdatedAt: mustTime("2024-01-10T10:00:00Z"),
		},
		{
			ID: "c2", OwnerID: "u3",
			Name: "María García", CompanyName: "Global Sales S.A.", Role: ptr("Gerente de Ventas"),
			Phone: "+52 55 8765 4321", Email: "maria@global.com", Website: ptr("global.com"),
			Origin: "Evento", ServiceType: models.ServiceContactCenter,
			ContractValue: ptr(120000.0), Status: models.StatusConvertido,
			CreatedAt: mustTime("2024-01-15T09:30:00Z"), UpdatedAt: mustTime("2024-01-20T14:00:00Z"),
		},
		{
			ID: "c3", OwnerID: "u2",
			Name: "Carlos Slim Jr", CompanyName: "Carso", Role: ptr("CEO"),
			Phone: "+52 55 1111 2222", Email: "carlos@carso.com", Website: ptr("carso.mx"),
			Origin: "Orgánico", ServiceType: models.ServiceAnalitica,
			ContractValue: ptr(85000.0), Status: models.StatusConvertido,
			CreatedAt: mustTime("2024-02-01T12:00:00Z"), UpdatedAt: mustTime("2024-03-05T16:00:00Z"),
		},
	}
}

// SeedInteractions are the demo log entries hydrated on first use.
func SeedInteractions() []models.Interaction {
	return []models.Interaction{
		{
			ID: "i1", ContactID: "c1", OwnerID: "u2",
			Timestamp: mustTime("2024-01-10T10:05:00Z"),
			Channel:   "Llamada",
			Summary:   "Primera toma de contacto, interesado en servicios cloud.",
			Type:      models.InteractionTypeManual,
		},
	}
}

// SeedTasks are the demo follow-ups hydrated on first use.
func SeedTasks() []models.Task {
	return []models.Task{
		{
			ID: "t1", ContactID: "c1", OwnerID: "u2", ContactName: "Juan Pérez",
			Title: "Enviar propuesta técnica",
			Date:  "2024-05-20", Time: "14:00", Channel: "Mail",
			Description: "Preparar PDF con la arquitectura sugerida.",
			IsCompleted: false,
		},
	}
}
