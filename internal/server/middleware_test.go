package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_AuthRequired(t *testing.T) {
	s, _, db := setupTestServer(t)
	user, validToken := createTestUser(t, s, db, "alice", "alice@example.com")

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userID":   c.Locals("userID"),
			"username": c.Locals("username"),
			"email":    c.Locals("email"),
		})
	})

	forgeToken := func(userID uint, issuer, audience string, exp time.Duration, secret string) string {
		claims := jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(userID), 10),
			"iss": issuer,
			"aud": audience,
			"exp": time.Now().Add(exp).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		str, _ := token.SignedString([]byte(secret))
		return str
	}
	secret := s.config.JWTSecret

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed header",
			authHeader:     "Token " + validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			authHeader:     "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired token",
			authHeader:     "Bearer " + forgeToken(user.ID, tokenIssuer, tokenAudience, -time.Hour, secret),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong issuer",
			authHeader:     "Bearer " + forgeToken(user.ID, "someone-else", tokenAudience, time.Hour, secret),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong audience",
			authHeader:     "Bearer " + forgeToken(user.ID, tokenIssuer, "someone-else", time.Hour, secret),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong signing key",
			authHeader:     "Bearer " + forgeToken(user.ID, tokenIssuer, tokenAudience, time.Hour, "another-secret-entirely-0123456789ab"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			// A valid signature over a user that no longer exists is still
			// an authentication failure.
			name:           "Token for missing user",
			authHeader:     "Bearer " + forgeToken(9999, tokenIssuer, tokenAudience, time.Hour, secret),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, resp)
				assert.Equal(t, float64(user.ID), body["userID"])
				assert.Equal(t, user.Username, body["username"])
				assert.Equal(t, user.Email, body["email"])
			} else {
				_ = resp.Body.Close()
			}
		})
	}
}

func TestServer_AuthRequired_GuardsMutatingRoutes(t *testing.T) {
	_, app, db := setupTestServer(t)
	seedTestTopics(t, db)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/posts/create"},
		{http.MethodPost, "/api/posts/update"},
		{http.MethodPost, "/api/posts/delete"},
		{http.MethodPost, "/api/topics/add"},
		{http.MethodPost, "/api/topics/update"},
		{http.MethodPost, "/api/topics/delete"},
	}

	for _, route := range protected {
		t.Run(route.path, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, route.method, route.path, map[string]string{}, ""))
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}
