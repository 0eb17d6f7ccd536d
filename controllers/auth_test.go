package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/physiosync/physiosync-server/models"
)

func TestRegisterPatientLandsOnBookingView(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := registerUser(t, app, "Liam Johnson", "liam.johnson@example.com", models.RolePatient)

	user := body["user"].(map[string]any)
	assert.Equal(t, true, user["isApproved"])
	assert.Equal(t, "booking", body["initialView"])
	assert.NotEmpty(t, body["token"])
	assert.Empty(t, user["passwordHash"])
}

func TestRegisterDoctorAwaitsApproval(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := registerUser(t, app, "Dr. Smith", "smith@example.com", models.RoleDoctor)

	user := body["user"].(map[string]any)
	assert.Equal(t, false, user["isApproved"])
	assert.Equal(t, "awaiting_approval", body["status"])
	assert.Empty(t, body["token"])

	// sign-in stays blocked until an admin approves
	status, loginBody := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "smith@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "awaiting_approval", loginBody["status"])
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, body := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name": "X", "email": "x@example.com",
		"password": "12345", "confirmPassword": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "at least 6 characters")

	status, body = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name": "X", "email": "x@example.com",
		"password": "secret123", "confirmPassword": "different",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "do not match")

	registerUser(t, app, "X", "x@example.com", models.RolePatient)
	status, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name": "Y", "email": "x@example.com",
		"password": "secret123", "confirmPassword": "secret123",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestLoginErrors(t *testing.T) {
	app, _ := newTestApp(t, nil)
	registerUser(t, app, "Liam Johnson", "liam@example.com", models.RolePatient)

	status, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "liam@example.com", "password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Incorrect password", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "nobody@example.com", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User not found", body["error"])
}

func TestAdminBootstrapLogin(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// works against a completely empty user collection
	token, body := login(t, app, "admin", "admin123")
	assert.Equal(t, "admin", body["initialView"])

	status, me := doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	user := me["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, true, user["isApproved"])
}

func TestApprovalFlow(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := registerUser(t, app, "Dr. Smith", "smith@example.com", models.RoleDoctor)
	id := body["user"].(map[string]any)["id"].(string)

	admin := loginAdmin(t, app)

	status, pending := doJSONList(t, app, http.MethodGet, "/admin/pending-users", admin)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, pending, 1)
	assert.Equal(t, "smith@example.com", pending[0]["email"])

	status, _ = doJSON(t, app, http.MethodPost, "/admin/users/"+id+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, status)

	_, loginBody := login(t, app, "smith@example.com", "secret123")
	assert.Equal(t, "dashboard", loginBody["initialView"])

	status, pending = doJSONList(t, app, http.MethodGet, "/admin/pending-users", admin)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, pending)
}

func TestRejectionFlow(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := registerUser(t, app, "Dr. Smith", "smith@example.com", models.RoleDoctor)
	id := body["user"].(map[string]any)["id"].(string)

	admin := loginAdmin(t, app)
	status, _ := doJSON(t, app, http.MethodDelete, "/admin/users/"+id, admin, nil)
	require.Equal(t, http.StatusOK, status)

	// the account is gone entirely
	status, loginBody := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "smith@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User not found", loginBody["error"])
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := registerUser(t, app, "Ava Green", "ava@example.com", models.RolePatient)
	token := body["token"].(string)

	status, _ := doJSONList(t, app, http.MethodGet, "/admin/pending-users", token)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, http.MethodPost, "/admin/reset", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRefreshToken(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := registerUser(t, app, "Ava Green", "ava@example.com", models.RolePatient)
	refresh := body["refreshToken"].(string)

	status, refreshed := doJSON(t, app, http.MethodPost, "/auth/refresh", "", fiber.Map{
		"refreshToken": refresh,
	})
	require.Equal(t, http.StatusOK, status)
	token := refreshed["token"].(string)
	require.NotEmpty(t, token)

	status, _ = doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, _ := doJSONList(t, app, http.MethodGet, "/appointments/", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/dashboard/stats", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
