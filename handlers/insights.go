package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"axis-server/models"
	"axis-server/services"
)

// AnalyzeData runs an AI read over an arbitrary dashboard dataset.
// When the insight service is not configured the fixed fallback payload
// is returned instead of an error, so the dashboard always renders.
func AnalyzeData(c *gin.Context) {
	var req struct {
		ChartTitle string      `json:"chart_title" binding:"required"`
		Data       interface{} `json:"data" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insight := services.FallbackInsight()
	if services.Insights != nil {
		insight = services.Insights.AnalyzeData(c.Request.Context(), req.ChartTitle, req.Data)
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

// ScoreContact rates a contact's closing potential from its interaction
// history. Degrades to one star when the insight service is unavailable.
func ScoreContact(c *gin.Context) {
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

	score := services.LeadScore{Stars: 1}
	if services.Insights != nil {
		score = services.Insights.ScoreLead(c.Request.Context(), contact, scoped)
	}

	c.JSON(http.StatusOK, gin.H{
		"contact_id": contact.ID,
		"score":      score,
	})
}
