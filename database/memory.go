package database

import (
	"sync"

	"axis-server/models"
)

// MemoryStore keeps every collection in process memory behind one mutex.
// Used by tests and STORAGE=memory runs; implements the same Store port
// as the Postgres store, including the atomic dual write.
type MemoryStore struct {
	mu           sync.RWMutex
	users        []models.UserAccount
	contacts     []models.Contact
	tasks        []models.Task
	interactions []models.Interaction
	goals        models.GoalBook
}

// NewMemoryStore returns a store hydrated with the seed collections.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        SeedUsers(),
		contacts:     SeedContacts(),
		tasks:        SeedTasks(),
		interactions: SeedInteractions(),
		goals:        models.GoalBook{},
	}
}

// NewEmptyMemoryStore returns a store with no seed data.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{goals: models.GoalBook{}}
}

func (s *MemoryStore) GetUsers() ([]models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UserAccount(nil), s.users...), nil
}

func (s *MemoryStore) PutUsers(users []models.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.UserAccount(nil), users...)
	return nil
}

func (s *MemoryStore) GetContacts() ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Contact(nil), s.contacts...), nil
}

func (s *MemoryStore) PutContacts(contacts []models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]models.Contact(nil), contacts...)
	return nil
}

func (s *MemoryStore) GetTasks() ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *MemoryStore) PutTasks(tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]models.Task(nil), tasks...)
	return nil
}

func (s *MemoryStore) GetInteractions() ([]models.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Interaction(nil), s.interactions...), nil
}

func (s *MemoryStore) PutInteractions(interactions []models.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = append([]models.Interaction(nil), interactions...)
	return nil
}

func (s *MemoryStore) GetGoals() (models.GoalBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := models.GoalBook{}
	for userID, byService := range s.goals {
		for service, cfg := range byService {
			copied.Set(userID, service, cfg)
		}
	}
	return copied, nil
}

func (s *MemoryStore) PutGoals(goals models.GoalBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := models.GoalBook{}
	for userID, byService := range goals {
		for service, cfg := range byService {
			copied.Set(userID, service, cfg)
		}
	}
	s.goals = copied
	return nil
}

func (s *MemoryStore) PutTasksAndInteractions(tasks []models.Task, interactions []models.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]models.Task(nil), tasks...)
	s.interactions = append([]models.Interaction(nil), interactions...)
	return nil
}
