package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"axis-server/models"
	"axis-server/services"
)

// GetDashboardStats returns the headline KPIs for the requester's scope:
// lead counts, conversion rate, pipeline value and pending workload.
func GetDashboardStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contacts, err := Store.GetContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	tasks, err := Store.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	now := time.Now()
	totalLeads := 0
	converted := 0
	pipelineValue := 0.0
	convertedValue := 0.0
	for _, contact := range contacts {
		if !user.CanView(contact.OwnerID) {
			continue
		}
		totalLeads++
		value := 0.0
		if contact.ContractValue != nil {
			value = *contact.ContractValue
		}
		if contact.Status == models.StatusConvertido {
			converted++
			convertedValue += value
		} else {
			pipelineValue += value
		}
	}

	conversionRate := 0.0
	if totalLeads > 0 {
		conversionRate = float64(converted) / float64(totalLeads) * 100
	}

	pendingTasks := 0
	overdueTasks := 0
	for _, task := range tasks {
		if !user.CanView(task.OwnerID) || task.IsCompleted {
			continue
		}
		pendingTasks++
		if services.ClassifyTask(task, now) == services.TaskOverdue {
			overdueTasks++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_leads":     totalLeads,
		"converted_leads": converted,
		"conversion_rate": conversionRate,
		"pipeline_value":  pipelineValue,
		"converted_value": convertedValue,
		"pending_tasks":   pendingTasks,
		"overdue_tasks":   overdueTasks,
	})
}

// GetFunnel counts the requester's visible contacts per pipeline stage,
// in catalog order. Stages with no contacts still appear with zero.
func GetFunnel(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contacts, err := Store.GetContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	counts := make(map[models.ContactStatus]int, len(models.PipelineStatuses))
	for _, contact := range contacts {
		if !user.CanView(contact.OwnerID) {
			continue
		}
		counts[contact.Status]++
	}

	type funnelStage struct {
		Status models.ContactStatus `json:"status"`
		Count  int                  `json:"count"`
	}
	stages := make([]funnelStage, 0, len(models.PipelineStatuses))
	for _, status := range models.PipelineStatuses {
		stages = append(stages, funnelStage{Status: status, Count: counts[status]})
	}

	c.JSON(http.StatusOK, gin.H{"funnel": stages})
}
