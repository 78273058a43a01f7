package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"axis-server/models"
	"axis-server/services"
)

// GetTasks lists tasks visible to the requester, filtered by
// all|pending|completed|overdue. Each task carries its temporal status
// evaluated at request time.
func GetTasks(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	filter := c.DefaultQuery("filter", "all")
	now := time.Now()

	tasks, err := Store.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	type taskView struct {
		models.Task
		Status services.TaskStatus `json:"status"`
	}

	views := make([]taskView, 0, len(tasks))
	for _, task := range tasks {
		if !user.CanView(task.OwnerID) {
			continue
		}
		status := services.ClassifyTask(task, now)
		switch filter {
		case "pending":
			if task.IsCompleted {
				continue
			}
		case "completed":
			if !task.IsCompleted {
				continue
			}
		case "overdue":
			if status != services.TaskOverdue {
				continue
			}
		}
		views = append(views, taskView{Task: task, Status: status})
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": views,
		"total": len(views),
	})
}

// CreateContactTask schedules a follow-up on a contact.
func CreateContactTask(c *gin.Context) {
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
		Title       string `json:"title" binding:"required"`
		Date        string `json:"date" binding:"required"`
		Time        string `json:"time" binding:"required"`
		Channel     string `json:"channel" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidChannel(req.Channel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown channel"})
		return
	}
	if _, err := services.CombineDueInstant(req.Date, req.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time"})
		return
	}

	task := models.Task{
		ID:          generateUUID(),
		ContactID:   contact.ID,
		OwnerID:     user.ID,
		ContactName: contact.Name,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Channel:     req.Channel,
		Description: req.Description,
		IsCompleted: false,
	}

	tasks, err := Store.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	if err := Store.PutTasks(append(tasks, task)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    task,
	})
}

// GetContactTasks lists one contact's tasks.
func GetContactTasks(c *gin.Context) {
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

	scoped := make([]models.Task, 0)
	for _, task := range tasks {
		if task.ContactID == contact.ID {
			scoped = append(scoped, task)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": scoped,
		"total": len(scoped),
	})
}

// CompleteTask marks a task completed with its fulfillment payload and
// writes the synthesized interaction in the same transaction. Completion
// is one-way: a completed task cannot be completed again.
func CompleteTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		FulfillmentDescription string              `json:"fulfillment_description" binding:"required"`
		Attachments            []models.Attachment `json:"attachments"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := Store.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	taskID := c.Param("id")
	index := -1
	for i, task := range tasks {
		if task.ID == taskID {
			index = i
			break
		}
	}
	if index == -1 || !user.CanView(tasks[index].OwnerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if tasks[index].IsCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Task already completed"})
		return
	}

	interactions, err := Store.GetInteractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}

	updated, interaction := services.CompleteTask(tasks[index], req.FulfillmentDescription, req.Attachments, time.Now())
	tasks[index] = updated

	if err := Store.PutTasksAndInteractions(tasks, append(interactions, interaction)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Task completed successfully",
		"task":        updated,
		"interaction": interaction,
	})
}
