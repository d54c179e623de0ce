package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clearprd/internal/config"
	"clearprd/internal/database"
	"clearprd/internal/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubLLM returns a canned response or error for every completion.
type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8001",
		JWTSecret:       "test-secret-key-for-handler-tests",
		TokenTTLMinutes: 60,
		PromptVariant:   "v1",
		Env:             "test",
	}
}

// newTestApp builds a Fiber app backed by an in-memory database and the
// given LLM stub, with all routes registered.
func newTestApp(t *testing.T, llmClient llm.Client) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	srv, err := NewServerWithDeps(testConfig(), db, llmClient)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)

	return app, srv
}

// doJSON performs a request with a JSON body plus optional bearer token and
// decodes the JSON response into out (if non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string, out any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// signupUser registers a user through the API and returns the access token.
func signupUser(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	var result struct {
		AccessToken string `json:"access_token"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
		map[string]string{"email": email, "password": password}, "", &result)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, result.AccessToken)
	return result.AccessToken
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t, nil)

	t.Run("Liveness", func(t *testing.T) {
		var body map[string]string
		resp := doJSON(t, app, http.MethodGet, "/health/live", nil, "", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "alive", body["status"])
	})

	t.Run("Readiness", func(t *testing.T) {
		var body map[string]any
		resp := doJSON(t, app, http.MethodGet, "/health/ready", nil, "", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "healthy", body["status"])
	})
}
