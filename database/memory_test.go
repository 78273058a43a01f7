package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axis-server/models"
)

func TestMemoryStoreSeeds(t *testing.T) {
	store := NewMemoryStore()

	users, err := store.GetUsers()
	require.NoError(t, err)
	assert.Len(t, users, 3)

	contacts, err := store.GetContacts()
	require.NoError(t, err)
	assert.Len(t, contacts, 3)

	empty := NewEmptyMemoryStore()
	users, err = empty.GetUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()

	contacts, err := store.GetContacts()
	require.NoError(t, err)
	contacts[0].Name = "mutated"

	fresh, err := store.GetContacts()
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", fresh[0].Name, "callers must not mutate stored state")
}

func TestMemoryStoreGoalsRoundTrip(t *testing.T) {
	store := NewEmptyMemoryStore()

	goals := models.GoalBook{}
	cfg := models.UserGoalConfig{Yearly: models.PeriodicGoal{Contracts: 12, Billing: 120_000}}
	goals.Set("u2", models.ServiceRecaudo, cfg)
	require.NoError(t, store.PutGoals(goals))

	// Mutating the book after the write must not leak into the store.
	goals.Set("u2", models.ServiceRecaudo, models.UserGoalConfig{})

	stored, err := store.GetGoals()
	require.NoError(t, err)
	got, ok := stored.Get("u2", models.ServiceRecaudo)
	require.True(t, ok)
	assert.Equal(t, cfg, got)
}

func TestMemoryStoreDualWrite(t *testing.T) {
	store := NewEmptyMemoryStore()

	tasks := []models.Task{{ID: "t9", ContactID: "c9", IsCompleted: true}}
	interactions := []models.Interaction{{ID: "i9", ContactID: "c9", Type: models.InteractionTypeTask}}
	require.NoError(t, store.PutTasksAndInteractions(tasks, interactions))

	gotTasks, err := store.GetTasks()
	require.NoError(t, err)
	gotInteractions, err := store.GetInteractions()
	require.NoError(t, err)

	require.Len(t, gotTasks, 1)
	require.Len(t, gotInteractions, 1)
	assert.True(t, gotTasks[0].IsCompleted)
	assert.Equal(t, "i9", gotInteractions[0].ID)
}
