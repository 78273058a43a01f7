package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminBootstrapEnablesGoalWrites(t *testing.T) {
	router := setupRouter(t)

	// The seeded admin ships without a credential and cannot log in yet.
	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]interface{}{"email": "admin@axis.com", "password": "admin123"})
	requireStatus(t, w, http.StatusUnauthorized)

	w, body := doRequest(t, router, http.MethodPost, "/setup-admin", "",
		map[string]interface{}{"password": "admin123"})
	requireStatus(t, w, http.StatusCreated)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ADMIN", user["role"])
	assert.Equal(t, "admin@axis.com", user["email"])
	assert.Nil(t, user["password_hash"], "hash must not serialize")

	w, body = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]interface{}{"email": "admin@axis.com", "password": "admin123"})
	requireStatus(t, w, http.StatusOK)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// The bootstrapped credential reaches the admin-only goal surface.
	w, _ = doRequest(t, router, http.MethodPut, "/api/v1/goals/u2/Contact%20Center/yearly", token,
		map[string]interface{}{"billing": 500_000.0, "contracts": 50})
	requireStatus(t, w, http.StatusOK)
}

func TestSetupAdminLocksAfterFirstUse(t *testing.T) {
	router := setupRouter(t)

	w, _ := doRequest(t, router, http.MethodPost, "/setup-admin", "",
		map[string]interface{}{"password": "admin123"})
	requireStatus(t, w, http.StatusCreated)

	w, _ = doRequest(t, router, http.MethodPost, "/setup-admin", "",
		map[string]interface{}{"password": "otherpass"})
	requireStatus(t, w, http.StatusForbidden)

	// The first credential still works.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]interface{}{"email": "admin@axis.com", "password": "admin123"})
	requireStatus(t, w, http.StatusOK)
}

func TestSetupAdminValidation(t *testing.T) {
	router := setupRouter(t)

	w, _ := doRequest(t, router, http.MethodPost, "/setup-admin", "",
		map[string]interface{}{"password": "12345"})
	requireStatus(t, w, http.StatusBadRequest)

	w, _ = doRequest(t, router, http.MethodPost, "/setup-admin", "",
		map[string]interface{}{})
	requireStatus(t, w, http.StatusBadRequest)
}
