package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dfarina/communio/internal/db"
	"github.com/gofiber/fiber/v2"
)

const testSecretKey = "test-secret-key"

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "communio-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// registerTestUser registers through the public endpoint and returns the
// issued token plus the user payload. The first call on a fresh app creates
// the administrator.
func registerTestUser(t *testing.T, app *fiber.App, name string, email string, password string) (string, map[string]any) {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", email, response.StatusCode)
	}

	var payload struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	decodeJSON(t, response, &payload)
	if payload.Token == "" {
		t.Fatalf("register %s: expected token in response", email)
	}
	return payload.Token, payload.User
}
