package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"axis-server/models"
	"axis-server/utils"
)

// SetupAdmin sets the first admin credential. The seeded admin account
// ships without a password and registration only grants USER, so this is
// the bootstrap that makes the admin surface reachable. It only works
// while no admin can log in; once any admin has a password the endpoint
// refuses.
func SetupAdmin(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	users, err := Store.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	adminIdx := -1
	for i := range users {
		if users[i].Role != models.RoleAdmin {
			continue
		}
		if users[i].PasswordHash != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin already configured"})
			return
		}
		if adminIdx == -1 {
			adminIdx = i
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hash := string(hashed)

	var admin models.UserAccount
	if adminIdx >= 0 {
		if req.Email != "" {
			users[adminIdx].Email = strings.ToLower(strings.TrimSpace(req.Email))
		}
		if req.Name != "" {
			users[adminIdx].Name = req.Name
		}
		users[adminIdx].PasswordHash = &hash
		admin = users[adminIdx]
	} else {
		name := req.Name
		if name == "" {
			name = "Administrador Principal"
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			email = "admin@axis.com"
		}
		avatar := utils.GenerateAvatarWithInitials(utils.GetInitialsFromName(name))
		admin = models.UserAccount{
			ID:           generateUUID(),
			Name:         name,
			Email:        email,
			PasswordHash: &hash,
			Role:         models.RoleAdmin,
			Avatar:       &avatar,
			CreatedAt:    time.Now(),
		}
		users = append(users, admin)
	}

	if err := Store.PutUsers(users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save admin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin configured successfully",
		"user":    admin,
	})
}
