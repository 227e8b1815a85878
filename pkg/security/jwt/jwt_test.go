package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumic/backend/pkg/auth"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, secret, issuer string, ttl time.Duration, user auth.User) string {
	t.Helper()
	token, err := NewGenerator(secret, issuer, ttl).Generate(context.Background(), user)
	require.NoError(t, err)
	return token
}

func newProtectedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/private", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	user := auth.User{ID: uuid.New()}
	valid := issueToken(t, testSecret, "resumic", time.Hour, user)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"bearer token", "Bearer " + valid, http.StatusOK},
		{"bare token", valid, http.StatusOK},
		{"case insensitive scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{
			"wrong secret",
			"Bearer " + issueToken(t, "other-secret", "resumic", time.Hour, user),
			http.StatusUnauthorized,
		},
		{
			"expired token",
			"Bearer " + issueToken(t, testSecret, "resumic", -time.Minute, user),
			http.StatusUnauthorized,
		},
		{
			"wrong issuer",
			"Bearer " + issueToken(t, testSecret, "someone-else", time.Hour, user),
			http.StatusUnauthorized,
		},
	}
	app := newProtectedApp(testSecret, "resumic")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_SetsSubjectLocal(t *testing.T) {
	user := auth.User{ID: uuid.New()}
	var gotUserID string
	app := fiber.New()
	app.Get("/private", NewAuthMiddleware(testSecret, "resumic"), func(c *fiber.Ctx) error {
		gotUserID, _ = c.Locals("userId").(string)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, testSecret, "resumic", time.Hour, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, user.ID.String(), gotUserID)
}

func TestAuthMiddleware_IssuerCheckDisabledWhenEmpty(t *testing.T) {
	user := auth.User{ID: uuid.New()}
	app := newProtectedApp(testSecret, "")
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, testSecret, "anything", time.Hour, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
