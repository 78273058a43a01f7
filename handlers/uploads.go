package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"axis-server/services"
)

const maxAttachmentSize = 10 << 20 // 10MB

// UploadAttachment stores a file for later linking to a task or
// interaction and returns its URL. Returns 503 when attachment storage
// was not configured at startup.
func UploadAttachment(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if services.Attachments == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Attachment storage not configured"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if header.Size > maxAttachmentSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "axis/attachments")
	url, err := services.Attachments.Upload(c.Request.Context(), file, folder, header.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":      url,
		"filename": header.Filename,
	})
}
