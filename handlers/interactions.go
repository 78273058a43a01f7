package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"axis-server/models"
	"axis-server/services"
)

// GetContactInteractions returns the interaction log of one contact,
// newest first.
func GetContactInteractions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contact, found, err := findContact(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		return
	}
	if !found || !user.CanView(contact.OwnerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	interactions, err := Store.GetInteractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}

	scoped := make([]models.Interaction, 0)
	for _, interaction := range interactions {
		if interaction.ContactID == contact.ID {
			scoped = append(scoped, interaction)
		}
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].Timestamp.After(scoped[j].Timestamp)
	})

	c.JSON(http.StatusOK, gin.H{
		"interactions": scoped,
		"total":        len(scoped),
	})
}

// CreateContactInteraction appends a manual log entry. Interactions are
// append-only: there is no update or delete.
func CreateContactInteraction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contact, found, err := findContact(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		return
	}
	if !found || !user.CanView(contact.OwnerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	var req struct {
		Channel     string   `json:"channel" binding:"required"`
		Summary     string   `json:"summary" binding:"required"`
		Attachments []string `json:"attachments"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidChannel(req.Channel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown channel"})
		return
	}

	interaction := models.Interaction{
		ID:          generateUUID(),
		ContactID:   contact.ID,
		OwnerID:     user.ID,
		Timestamp:   time.Now(),
		Channel:     req.Channel,
		Summary:     req.Summary,
		Type:        models.InteractionTypeManual,
		Attachments: req.Attachments,
	}

	interactions, err := Store.GetInteractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}
	if err := Store.PutInteractions(append(interactions, interaction)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Interaction created successfully",
		"interaction": interaction,
	})
}

// GetContactTimeline merges the contact's tasks and interactions into
// one feed, most recent first. Task statuses are evaluated against the
// current clock on every call.
func GetContactTimeline(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contact, found, err := findContact(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		return
	}
	if !found || !user.CanView(contact.OwnerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	tasks, err := Store.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	interactions, err := Store.GetInteractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}

	scopedTasks := make([]models.Task, 0)
	for _, task := range tasks {
		if task.ContactID == contact.ID {
			scopedTasks = append(scopedTasks, task)
		}
	}
	scopedInteractions := make([]models.Interaction, 0)
	for _, interaction := range interactions {
		if interaction.ContactID == contact.ID {
			scopedInteractions = append(scopedInteractions, interaction)
		}
	}

	now := time.Now()
	entries := services.MergeTimeline(scopedTasks, scopedInteractions)

	type timelineItem struct {
		services.TimelineEntry
		TaskStatus services.TaskStatus `json:"task_status,omitempty"`
	}
	items := make([]timelineItem, 0, len(entries))
	for _, entry := range entries {
		item := timelineItem{TimelineEntry: entry}
		if entry.Task != nil {
			item.TaskStatus = services.ClassifyTask(*entry.Task, now)
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"timeline": items,
		"total":    len(items),
	})
}
