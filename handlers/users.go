package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"axis-server/models"
)

// GetUsers lists the commercial team. Admins see every account; a
// regular user only sees their own. Password hashes never serialize.
func GetUsers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	users, err := Store.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	visible := make([]models.UserAccount, 0, len(users))
	for _, u := range users {
		if user.IsAdmin() || u.ID == user.ID {
			visible = append(visible, u)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"users": visible,
		"total": len(visible),
	})
}

// GetCurrentUser returns the authenticated account.
func GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	users, err := Store.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	for _, u := range users {
		if u.ID == user.ID {
			c.JSON(http.StatusOK, gin.H{"user": u})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
}
