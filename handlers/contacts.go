package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"axis-server/models"
)

// GetContacts returns contacts visible to the requester, optionally
// filtered by status, service type or a free-text search.
func GetContacts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status := c.Query("status")
	serviceType := c.Query("service_type")
	search := strings.ToLower(c.Query("search"))

	contacts, err := Store.GetContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	filtered := make([]models.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if !user.CanView(contact.OwnerID) {
			continue
		}
		if status != "" && string(contact.Status) != status {
			continue
		}
		if serviceType != "" && string(contact.ServiceType) != serviceType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(contact.Name), search) &&
			!strings.Contains(strings.ToLower(contact.CompanyName), search) &&
			!strings.Contains(strings.ToLower(contact.Email), search) {
			continue
		}
		filtered = append(filtered, contact)
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": filtered,
		"total":    len(filtered),
	})
}

// GetContact returns a specific contact by ID
func GetContact(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// CreateContact creates a new lead. Name, company, phone, email and
// service type are required; origin and status must come from the fixed
// catalogs. Validation failure blocks the write entirely.
func CreateContact(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Name          string   `json:"name" binding:"required"`
		CompanyName   string   `json:"company_name" binding:"required"`
		Role          *string  `json:"role"`
		Phone         string   `json:"phone" binding:"required"`
		Email         string   `json:"email" binding:"required,email"`
		Website       *string  `json:"website"`
		Origin        string   `json:"origin" binding:"required"`
		ServiceType   string   `json:"service_type" binding:"required"`
		ContractValue *float64 `json:"contract_value"`
		Status        string   `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidOrigin(req.Origin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown origin"})
		return
	}
	if !models.ValidServiceType(models.ServiceType(req.ServiceType)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
		return
	}
	if req.Status == "" {
		req.Status = string(models.StatusProspecto)
	}
	if !models.ValidStatus(models.ContactStatus(req.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	if req.ContractValue != nil && *req.ContractValue < 0 {
		zero := 0.0
		req.ContractValue = &zero
	}

	now := time.Now()
	contact := models.Contact{
		ID:            generateUUID(),
		OwnerID:       user.ID,
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Role:          req.Role,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		Origin:        req.Origin,
		ServiceType:   models.ServiceType(req.ServiceType),
		ContractValue: req.ContractValue,
		Status:        models.ContactStatus(req.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	contacts, err := Store.GetContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	if err := Store.PutContacts(append(contacts, contact)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact created successfully",
		"contact": contact,
	})
}

// UpdateContact mutates a contact in place. Any status transition is
// permitted; there is no enforced pipeline order.
func UpdateContact(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		CompanyName   *string  `json:"company_name"`
		Role          *string  `json:"role"`
		Phone         *string  `json:"phone"`
		Email         *string  `json:"email"`
		Website       *string  `json:"website"`
		Origin        *string  `json:"origin"`
		ServiceType   *string  `json:"service_type"`
		ContractValue *float64 `json:"contract_value"`
		Status        *string  `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contacts, err := Store.GetContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	contactID := c.Param("id")
	index := -1
	for i, contact := range contacts {
		if contact.ID == contactID {
			index = i
			break
		}
	}
	if index == -1 || !user.CanView(contacts[index].OwnerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	contact := &contacts[index]
	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.CompanyName != nil {
		contact.CompanyName = *req.CompanyName
	}
	if req.Role != nil {
		contact.Role = req.Role
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Website != nil {
		contact.Website = req.Website
	}
	if req.Origin != nil {
		if !models.ValidOrigin(*req.Origin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown origin"})
			return
		}
		contact.Origin = *req.Origin
	}
	if req.ServiceType != nil {
		if !models.ValidServiceType(models.ServiceType(*req.ServiceType)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
			return
		}
		contact.ServiceType = models.ServiceType(*req.ServiceType)
	}
	if req.ContractValue != nil {
		value := *req.ContractValue
		if value < 0 {
			value = 0
		}
		contact.ContractValue = &value
	}
	if req.Status != nil {
		if !models.ValidStatus(models.ContactStatus(*req.Status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		contact.Status = models.ContactStatus(*req.Status)
	}
	contact.UpdatedAt = time.Now()

	if err := Store.PutContacts(contacts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact updated successfully",
		"contact": contact,
	})
}

func findContact(contactID string) (models.Contact, bool, error) {
	contacts, err := Store.GetContacts()
	if err != nil {
		return models.Contact{}, false, err
	}
	for _, contact := range contacts {
		if contact.ID == contactID {
			return contact, true, nil
		}
	}
	return models.Contact{}, false, nil
}
