package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"axis-server/models"
)

// DB is the Postgres-backed collection store. Each collection is one
// JSONB row in the collections table, read and written whole.
type DB struct {
	*sql.DB
}

var Database *DB

// Connect opens the PostgreSQL connection and verifies it.
func Connect(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	Database = &DB{db}
	return Database, nil
}

// InitializeTables creates the collections table and hydrates the seed
// collections when their keys are absent.
func (db *DB) InitializeTables() error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}

	if err := db.seed(); err != nil {
		return fmt.Errorf("failed to seed collections: %w", err)
	}

	log.Println("Collection store ready")
	return nil
}

// seed inserts the initial collections only where the key does not exist
// yet; existing data is never overwritten.
func (db *DB) seed() error {
	seeds := []struct {
		key  string
		data interface{}
	}{
		{KeyUsers, SeedUsers()},
		{KeyContacts, SeedContacts()},
		{KeyTasks, SeedTasks()},
		{KeyInteractions, SeedInteractions()},
		{KeyGoals, models.GoalBook{}},
	}

	for _, s := range seeds {
		payload, err := json.Marshal(s.data)
		if err != nil {
			return fmt.Errorf("failed to marshal seed %s: %w", s.key, err)
		}
		query := `INSERT INTO collections (key, data) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`
		if _, err := db.Exec(query, s.key, payload); err != nil {
			return fmt.Errorf("failed to seed %s: %w", s.key, err)
		}
	}
	return nil
}

// GetCollection reads one whole collection into out.
func (db *DB) GetCollection(key string, out interface{}) error {
	var data []byte
	err := db.QueryRow(`SELECT data FROM collections WHERE key = $1`, key).Scan(&data)
	if err == sql.ErrNoRows {
		// Absent collection reads as the zero value of out.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return nil
}

// PutCollection replaces one whole collection.
func (db *DB) PutCollection(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	query := `
		INSERT INTO collections (key, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := db.Exec(query, key, payload); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

func (db *DB) GetUsers() ([]models.UserAccount, error) {
	var users []models.UserAccount
	err := db.GetCollection(KeyUsers, &users)
	return users, err
}

func (db *DB) PutUsers(users []models.UserAccount) error {
	return db.PutCollection(KeyUsers, users)
}

func (db *DB) GetContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	err := db.GetCollection(KeyContacts, &contacts)
	return contacts, err
}

func (db *DB) PutContacts(contacts []models.Contact) error {
	return db.PutCollection(KeyContacts, contacts)
}

func (db *DB) GetTasks() ([]models.Task, error) {
	var tasks []models.Task
	err := db.GetCollection(KeyTasks, &tasks)
	return tasks, err
}

func (db *DB) PutTasks(tasks []models.Task) error {
	return db.PutCollection(KeyTasks, tasks)
}

func (db *DB) GetInteractions() ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := db.GetCollection(KeyInteractions, &interactions)
	return interactions, err
}

func (db *DB) PutInteractions(interactions []models.Interaction) error {
	return db.PutCollection(KeyInteractions, interactions)
}

func (db *DB) GetGoals() (models.GoalBook, error) {
	goals := models.GoalBook{}
	err := db.GetCollection(KeyGoals, &goals)
	return goals, err
}

func (db *DB) PutGoals(goals models.GoalBook) error {
	return db.PutCollection(KeyGoals, goals)
}

// PutTasksAndInteractions writes both collections in one transaction, so
// a completed task and its synthesized interaction become visible
// together or not at all.
func (db *DB) PutTasksAndInteractions(tasks []models.Task, interactions []models.Interaction) error {
	taskData, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	interactionData, err := json.Marshal(interactions)
	if err != nil {
		return fmt.Errorf("failed to encode interactions: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO collections (key, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := tx.Exec(query, KeyTasks, taskData); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if _, err := tx.Exec(query, KeyInteractions, interactionData); err != nil {
		return fmt.Errorf("failed to write interactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task completion: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.DB.Close()
}
