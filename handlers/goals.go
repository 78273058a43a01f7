package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"axis-server/models"
	"axis-server/services"
)

func goalParams(c *gin.Context) (string, models.ServiceType, bool) {
	userID := c.Param("userId")
	service := models.ServiceType(c.Param("service"))
	if !models.ValidServiceType(service) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
		return "", "", false
	}
	return userID, service, true
}

// GetGoal returns the stored quota config for (user, service), or the
// default when none exists. The consistency flag is advisory.
func GetGoal(c *gin.Context) {
	userID, service, ok := goalParams(c)
	if !ok {
		return
	}

	goals, err := Store.GetGoals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	cfg := services.GoalFor(goals, userID, service)

	c.JSON(http.StatusOK, gin.H{
		"user_id":    userID,
		"service":    service,
		"goal":       cfg,
		"consistent": services.CheckConsistency(cfg),
	})
}

// PutGoal replaces the full three-tier config for (user, service).
// Admin-only. Inconsistent tiers are stored as-is and only flagged.
func PutGoal(c *gin.Context) {
	userID, service, ok := goalParams(c)
	if !ok {
		return
	}

	var cfg models.UserGoalConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg = services.SanitizeGoalConfig(cfg)

	goals, err := Store.GetGoals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	goals.Set(userID, service, cfg)

	if err := Store.PutGoals(goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Goal saved successfully",
		"goal":       cfg,
		"consistent": services.CheckConsistency(cfg),
	})
}

// SetYearlyGoal updates only the yearly bucket. Quarterly and monthly
// figures stay untouched until an explicit auto-distribute. Admin-only.
func SetYearlyGoal(c *gin.Context) {
	userID, service, ok := goalParams(c)
	if !ok {
		return
	}

	var req struct {
		Billing   float64 `json:"billing"`
		Contracts int     `json:"contracts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := Store.GetGoals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	cfg := services.SetYearly(services.GoalFor(goals, userID, service), req.Billing, req.Contracts)
	goals.Set(userID, service, cfg)

	if err := Store.PutGoals(goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Yearly goal updated",
		"goal":       cfg,
		"consistent": services.CheckConsistency(cfg),
	})
}

// DistributeGoal recomputes quarters and months from the yearly bucket.
// The only operation that forces the hierarchy consistent. Admin-only.
func DistributeGoal(c *gin.Context) {
	userID, service, ok := goalParams(c)
	if !ok {
		return
	}

	goals, err := Store.GetGoals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	cfg := services.AutoDistribute(services.GoalFor(goals, userID, service))
	goals.Set(userID, service, cfg)

	if err := Store.PutGoals(goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Goal distributed",
		"goal":       cfg,
		"consistent": services.CheckConsistency(cfg),
	})
}

// GetPerformance reduces quotas and converted contacts into per-service
// performance for one month. Scope defaults to the requester; admins may
// pass scope=all or another user id. Missing configs aggregate as zero
// targets.
func GetPerformance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	scope := c.DefaultQuery("scope", user.ID)
	if !user.IsAdmin() {
		scope = user.ID
	}

	monthIdx := int(time.Now().Month()) - 1
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 11 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month index must be 0-11"})
			return
		}
		monthIdx = parsed
	}

	goals, err := Store.GetGoals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	contacts, err := Store.GetContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	performance := services.ComputePerformance(goals, contacts, scope, monthIdx)

	c.JSON(http.StatusOK, gin.H{
		"scope":       scope,
		"month":       monthIdx,
		"performance": performance,
	})
}
