package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"axis-server/models"
)

// GetCatalogs returns the fixed vocabularies the pipeline operates on.
// Clients render these verbatim; there is no write surface for them.
func GetCatalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"origins":       models.Origins,
		"channels":      models.Channels,
		"service_types": models.ServiceTypes,
		"statuses":      models.PipelineStatuses,
	})
}
