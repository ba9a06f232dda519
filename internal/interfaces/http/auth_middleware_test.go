package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/HKRAGD/megaSafraSistem-sub000/internal/interfaces/http"
	"github.com/HKRAGD/megaSafraSistem-sub000/pkg/jwt"
)

const testJWTSecret = "segredo-de-teste-nao-usar-em-producao"

func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/api", httpapi.AuthMiddleware(testJWTSecret))
	protected.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": httpapi.GetUserID(c),
			"role":   httpapi.GetRole(c),
		})
	})
	admin := protected.Group("/admin", httpapi.RequireRole("ADMIN"))
	admin.Get("/painel", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, "user-42", role, "mega-safra-test", 5)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, token, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ─────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "", "/api/perfil")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(fiber.MethodGet, "/api/perfil", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "isto-nao-e-um-jwt", "/api/perfil")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_AssinaturaDeOutroSegredo(t *testing.T) {
	app := buildTestApp()
	forged, err := jwt.Generate("outro-segredo", "user-42", "ADMIN", "mega-safra-test", 5)
	require.NoError(t, err)

	resp := doRequest(t, app, forged, "/api/perfil")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraiClaimsParaLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRole(t, "OPERATOR"), "/api/perfil")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "user-42")
	assert.Contains(t, string(body), "OPERATOR")
}

// ─────────────────────────────────────────────────────────────────────────────
// RequireRole
// ─────────────────────────────────────────────────────────────────────────────

func TestRequireRole_PapelAutorizado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRole(t, "ADMIN"), "/api/admin/painel")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_PapelSemPermissao(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRole(t, "OPERATOR"), "/api/admin/painel")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ─────────────────────────────────────────────────────────────────────────────
// pkg/jwt
// ─────────────────────────────────────────────────────────────────────────────

func TestJWT_GeraEValida(t *testing.T) {
	token, err := jwt.Generate(testJWTSecret, "user-7", "ADMIN", "mega-safra-test", 5)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", userID)
	assert.Equal(t, "ADMIN", role)
}

func TestJWT_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testJWTSecret, "user-7", "ADMIN", "mega-safra-test", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testJWTSecret, token)
	assert.Error(t, err)
}

func TestJWT_SegredoVazio(t *testing.T) {
	_, err := jwt.Generate("", "user-7", "ADMIN", "mega-safra-test", 5)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "qualquer")
	assert.Error(t, err)
}
