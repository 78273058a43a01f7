package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"axis-server/database"
)

// setupRouter wires a fresh seeded memory store into the handler package
// and returns a router with the same route layout as the server.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitializeHandlers(database.NewMemoryStore())

	router := gin.New()
	router.POST("/setup-admin", SetupAdmin)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", RegisterUser)
	auth.POST("/login", LoginUser)
	auth.GET("/validate", ValidateToken)

	protected := api.Group("")
	protected.Use(AuthMiddleware())
	{
		protected.GET("/catalogs", GetCatalogs)
		protected.GET("/users", GetUsers)

		protected.GET("/contacts", GetContacts)
		protected.POST("/contacts", CreateContact)
		protected.GET("/contacts/:id", GetContact)
		protected.PUT("/contacts/:id", UpdateContact)
		protected.GET("/contacts/:id/timeline", GetContactTimeline)
		protected.GET("/contacts/:id/interactions", GetContactInteractions)
		protected.POST("/contacts/:id/interactions", CreateContactInteraction)
		protected.GET("/contacts/:id/tasks", GetContactTasks)
		protected.POST("/contacts/:id/tasks", CreateContactTask)

		protected.GET("/tasks", GetTasks)
		protected.POST("/tasks/:id/complete", CompleteTask)

		protected.GET("/goals/:userId/:service", GetGoal)
		adminGoals := protected.Group("/goals", AdminMiddleware())
		adminGoals.PUT("/:userId/:service", PutGoal)
		adminGoals.PUT("/:userId/:service/yearly", SetYearlyGoal)
		adminGoals.POST("/:userId/:service/distribute", DistributeGoal)

		protected.GET("/dashboard/performance", GetPerformance)
		protected.GET("/dashboard/stats", GetDashboardStats)
		protected.GET("/dashboard/funnel", GetFunnel)
	}

	return router
}

// tokenFor issues a token for one of the seeded accounts.
func tokenFor(t *testing.T, userID, email, role string) string {
	t.Helper()
	token, err := generateJWT(userID, email, role)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	return tokenFor(t, "u1", "admin@axis.com", "ADMIN")
}

func userToken(t *testing.T) string {
	return tokenFor(t, "u2", "carlos@axis.com", "USER")
}

// doRequest performs one request against the router and decodes the JSON
// body into a generic map.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
