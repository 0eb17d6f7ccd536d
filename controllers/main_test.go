package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/controllers"
	"github.com/physiosync/physiosync-server/models"
	"github.com/physiosync/physiosync-server/routes"
	"github.com/physiosync/physiosync-server/store"
)

// stubParser scripts the message-parse collaborator.
type stubParser struct {
	booking models.ParsedBooking
	err     error
}

func (s *stubParser) ParseMessage(ctx context.Context, message string) (models.ParsedBooking, error) {
	if s.err != nil {
		return models.ParsedBooking{}, s.err
	}
	return s.booking, nil
}

var errStubParse = errors.New("stub parse failure")

func newTestApp(t *testing.T, parser controllers.MessageParser) (*fiber.App, *clinic.Service) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := clinic.NewService(store.New(client))
	require.NoError(t, svc.Load(context.Background()))

	h := controllers.NewHandler(svc, parser)

	app := fiber.New()
	routes.SetupAuthRoutes(app, h, svc)
	routes.SetupAppointmentRoutes(app, h, svc)
	routes.SetupPatientRoutes(app, h, svc)
	routes.SetupAdminRoutes(app, h, svc)
	return app, svc
}

// doJSON performs a request and decodes the JSON response body into a map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, app *fiber.App, name, email string, role models.UserRole) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":            name,
		"email":           email,
		"password":        "secret123",
		"confirmPassword": "secret123",
		"role":            role,
	})
	require.Equal(t, http.StatusCreated, status, body)
	return body
}

func login(t *testing.T, app *fiber.App, email, password string) (string, map[string]any) {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token, body
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	token, body := login(t, app, "admin", "admin123")
	user := body["user"].(map[string]any)
	require.Equal(t, "admin", user["role"])
	return token
}

// approvedDoctorToken registers a doctor, approves it through the admin
// surface and signs it in.
func approvedDoctorToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	body := registerUser(t, app, "Dr. Smith", "smith@example.com", models.RoleDoctor)
	user := body["user"].(map[string]any)
	id := user["id"].(string)

	admin := loginAdmin(t, app)
	status, _ := doJSON(t, app, http.MethodPost, "/admin/users/"+id+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, status)

	token, _ := login(t, app, "smith@example.com", "secret123")
	return token
}
