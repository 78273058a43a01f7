package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]interface{}{
			"name":     "Lucía Ramos",
			"email":    "Lucia@Axis.com",
			"password": "secret123",
		})
	requireStatus(t, w, http.StatusCreated)
	require.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "lucia@axis.com", user["email"], "emails normalize to lowercase")
	assert.Equal(t, "USER", user["role"], "self-registration never grants ADMIN")
	assert.Nil(t, user["password_hash"], "hash must not serialize")

	w, body = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]interface{}{"email": "lucia@axis.com", "password": "secret123"})
	requireStatus(t, w, http.StatusOK)
	assert.NotEmpty(t, body["token"])

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]interface{}{"email": "lucia@axis.com", "password": "wrong"})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	router := setupRouter(t)

	payload := map[string]interface{}{
		"name":     "Carlos Impostor",
		"email":    "carlos@axis.com", // seeded account
		"password": "secret123",
	}
	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", payload)
	requireStatus(t, w, http.StatusConflict)
}

func TestRegisterValidation(t *testing.T) {
	router := setupRouter(t)

	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]interface{}{"name": "Ana", "email": "ana2@axis.com", "password": "12345"})
	requireStatus(t, w, http.StatusBadRequest)

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]interface{}{"name": "X", "email": "x@axis.com", "password": "secret123"})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestValidateToken(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/auth/validate", adminToken(t), nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "ADMIN", body["role"])

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/auth/validate", "garbage", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestGetUsersScoping(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/users", adminToken(t), nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, float64(3), body["total"])

	w, body = doRequest(t, router, http.MethodGet, "/api/v1/users", userToken(t), nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, float64(1), body["total"])
}
