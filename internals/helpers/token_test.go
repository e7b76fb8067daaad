package helper

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmanager_backend/internals/constants"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	in := Caller{UserID: 42, UserName: "t1", Role: constants.RoleTeacher}

	raw, err := issuer.Issue(in)
	require.NoError(t, err)

	out, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTokenExpired(t *testing.T) {
	past := NewTokenIssuer("test-secret", time.Hour)
	past.Now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	raw, err := past.Issue(Caller{UserID: 1, UserName: "s1", Role: constants.RoleStudent})
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret", time.Hour).Parse(raw)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	raw, err := NewTokenIssuer("secret-a", time.Hour).Issue(Caller{UserID: 1, UserName: "t1", Role: constants.RoleTeacher})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Parse(raw)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret", time.Hour).Parse("not-a-jwt")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := ExtractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	cases := []struct {
		name    string
		headers map[string]string
		status  int
		body    string
	}{
		{"authorization header", map[string]string{"Authorization": "Bearer abc"}, 200, "abc"},
		{"lowercase scheme", map[string]string{"Authorization": "bearer abc"}, 200, "abc"},
		{"x-auth-token header", map[string]string{"x-auth-token": "xyz"}, 200, "xyz"},
		{"x-auth-token wins", map[string]string{"x-auth-token": "xyz", "Authorization": "Bearer abc"}, 200, "xyz"},
		{"missing", map[string]string{}, 401, ""},
		{"wrong scheme", map[string]string{"Authorization": "Basic abc"}, 401, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.body != "" {
				b, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tc.body, string(b))
			}
		})
	}
}
