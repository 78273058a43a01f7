package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"axis-server/models"
)

// TaskStatus is the temporal classification of a task at evaluation time.
// It is never stored: callers re-evaluate against the current clock.
type TaskStatus string

const (
	TaskCompleted TaskStatus = "completed"
	TaskOverdue   TaskStatus = "overdue"
	TaskDueSoon   TaskStatus = "due_soon"
	TaskUpcoming  TaskStatus = "upcoming"
)

const dueSoonWindow = 24 * time.Hour

// CombineDueInstant builds the UTC due instant from a task's separate
// date ("2006-01-02") and time ("15:04") fields.
func CombineDueInstant(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04", date+"T"+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid task schedule %q %q: %w", date, clock, err)
	}
	return t.UTC(), nil
}

// ClassifyTask returns the task's temporal state relative to now.
// Completion is terminal and overrides the schedule. An unparseable
// schedule classifies as overdue so it surfaces rather than hides.
func ClassifyTask(task models.Task, now time.Time) TaskStatus {
	if task.IsCompleted {
		return TaskCompleted
	}
	due, err := CombineDueInstant(task.Date, task.Time)
	if err != nil {
		return TaskOverdue
	}
	if due.Before(now) {
		return TaskOverdue
	}
	if diff := due.Sub(now); diff > 0 && diff < dueSoonWindow {
		return TaskDueSoon
	}
	return TaskUpcoming
}

const (
	EntryTask        = "task"
	EntryInteraction = "interaction"
)

// TimelineEntry is one item of the unified feed: a tagged union of a task
// and an interaction sharing a sort key and a channel.
type TimelineEntry struct {
	Kind        string              `json:"kind"` // task, interaction
	SortKey     time.Time           `json:"sort_key"`
	Channel     string              `json:"channel"`
	Task        *models.Task        `json:"task,omitempty"`
	Interaction *models.Interaction `json:"interaction,omitempty"`
}

// MergeTimeline merges a contact's tasks and interactions into one feed
// ordered most recent first. A task's sort key is its combined due
// instant, an interaction's its timestamp. Ties keep insertion order:
// interactions before tasks at identical instants.
func MergeTimeline(tasks []models.Task, interactions []models.Interaction) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(tasks)+len(interactions))

	for i := range interactions {
		in := interactions[i]
		entries = append(entries, TimelineEntry{
			Kind:        EntryInteraction,
			SortKey:     in.Timestamp,
			Channel:     in.Channel,
			Interaction: &in,
		})
	}
	for i := range tasks {
		t := tasks[i]
		due, err := CombineDueInstant(t.Date, t.Time)
		if err != nil {
			due = time.Time{}
		}
		entries = append(entries, TimelineEntry{
			Kind:    EntryTask,
			SortKey: due,
			Channel: t.Channel,
			Task:    &t,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey.After(entries[j].SortKey)
	})
	return entries
}

// CompleteTask marks the task completed with its fulfillment payload and
// synthesizes the accompanying interaction record. The pair must be
// persisted atomically: the timeline is only correct when the interaction
// always accompanies the completed task.
func CompleteTask(task models.Task, fulfillment string, attachments []models.Attachment, now time.Time) (models.Task, models.Interaction) {
	task.IsCompleted = true
	task.FulfillmentDescription = fulfillment
	task.Attachments = attachments

	names := make([]string, len(attachments))
	for i, a := range attachments {
		names[i] = a.Name
	}

	interaction := models.Interaction{
		ID:          uuid.New().String(),
		ContactID:   task.ContactID,
		OwnerID:     task.OwnerID,
		Timestamp:   now,
		Channel:     task.Channel,
		Summary:     fmt.Sprintf("[Tarea Completada: %s] %s", task.Title, fulfillment),
		Type:        models.InteractionTypeTask,
		Attachments: names,
	}
	return task, interaction
}
