package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clearprd/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	app, _ := newTestApp(t, nil)

	t.Run("Success returns token", func(t *testing.T) {
		var result struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			map[string]string{"email": "new@example.com", "password": "password123"}, "", &result)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "bearer", result.TokenType)
	})

	t.Run("Duplicate email is a conflict", func(t *testing.T) {
		signupUser(t, app, "taken@example.com", "password123")

		var errResp models.ErrorResponse
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			map[string]string{"email": "taken@example.com", "password": "password123"}, "", &errResp)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, models.CodeConflict, errResp.Code)
	})

	t.Run("Invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			body map[string]string
		}{
			{"Bad email", map[string]string{"email": "not-an-email", "password": "password123"}},
			{"Short password", map[string]string{"email": "ok@example.com", "password": "short"}},
			{"Missing email", map[string]string{"password": "password123"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", tt.body, "", nil)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t, nil)
	signupUser(t, app, "login@example.com", "password123")

	t.Run("Success with JSON body", func(t *testing.T) {
		var result struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "login@example.com", "password": "password123"}, "", &result)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "bearer", result.TokenType)
	})

	t.Run("Success with form body using username field", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "login@example.com")
		form.Set("password", "password123")

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Wrong password and unknown email are indistinguishable", func(t *testing.T) {
		var wrongPass models.ErrorResponse
		resp1 := doJSON(t, app, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "login@example.com", "password": "wrong-password"}, "", &wrongPass)

		var unknown models.ErrorResponse
		resp2 := doJSON(t, app, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "ghost@example.com", "password": "password123"}, "", &unknown)

		assert.Equal(t, http.StatusUnauthorized, resp1.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
		assert.Equal(t, wrongPass.Error, unknown.Error)
		assert.Equal(t, wrongPass.Code, unknown.Code)
	})
}

func TestMe(t *testing.T) {
	app, _ := newTestApp(t, nil)
	token := signupUser(t, app, "me@example.com", "password123")

	t.Run("Returns user without password", func(t *testing.T) {
		var body map[string]any
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, token, &body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "me@example.com", body["email"])
		assert.NotEmpty(t, body["id"])
		assert.NotEmpty(t, body["created_at"])
		assert.NotContains(t, body, "password")
	})

	t.Run("Missing token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Garbage token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, "not.a.jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequired(t *testing.T) {
	app, srv := newTestApp(t, nil)
	signupUser(t, app, "claims@example.com", "password123")

	signToken := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(srv.config.JWTSecret))
		require.NoError(t, err)
		return signed
	}

	baseClaims := func() jwt.MapClaims {
		now := time.Now()
		return jwt.MapClaims{
			"sub": "claims@example.com",
			"iss": tokenIssuer,
			"aud": tokenAudience,
			"exp": now.Add(time.Hour).Unix(),
			"iat": now.Unix(),
			"nbf": now.Unix(),
		}
	}

	t.Run("Valid hand-crafted token is accepted", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, signToken(t, baseClaims()), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Expired token", func(t *testing.T) {
		claims := baseClaims()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, signToken(t, claims), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		claims := baseClaims()
		claims["iss"] = "someone-else"
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, signToken(t, claims), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong audience", func(t *testing.T) {
		claims := baseClaims()
		claims["aud"] = "other-app"
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, signToken(t, claims), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Subject not a live user", func(t *testing.T) {
		claims := baseClaims()
		claims["sub"] = "deleted@example.com"
		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, signToken(t, claims), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong signing key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, baseClaims())
		signed, err := token.SignedString([]byte("a-different-secret-entirely"))
		require.NoError(t, err)

		resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, signed, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
