package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tiendashellx/pos-api/internal/interfaces/http"
	"github.com/tiendashellx/pos-api/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testCookieName = "tienda_session"
	testIssuer     = "tienda-pos-test"
	testTenantID   = "00000000-0000-0000-0000-000000000001"
)

// buildTestApp construye una aplicación Fiber mínima con el middleware de
// sesión y un handler dummy que devuelve el payload cargado en locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(testSecret, testCookieName),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"username":   apphttp.GetUsername(c),
				"tenant_id":  apphttp.GetTenantID(c),
				"store_name": apphttp.GetStoreName(c),
			})
		},
	)
	return app
}

// sessionToken genera un token de sesión firmado para los tests.
func sessionToken(t *testing.T, secret string) string {
	t.Helper()
	tok, err := session.Generate(secret, testIssuer, 24, session.Payload{
		Username:  "maria",
		TenantID:  testTenantID,
		StoreName: "tienda_maria",
		Email:     "maria@example.com",
	})
	require.NoError(t, err, "debe generarse un token de sesión válido")
	return tok
}

// doRequest lanza GET /protected con la cookie indicada (vacía = sin cookie).
func doRequest(t *testing.T, app *fiber.App, cookieValue string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cookie válida → HTTP 200 y el payload queda disponible en locals.
func TestSessionMiddleware_CookieValida(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, sessionToken(t, testSecret))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una cookie de sesión válida debe dar acceso")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "maria", body["username"])
	assert.Equal(t, testTenantID, body["tenant_id"],
		"el tenant de la sesión debe viajar en locals")
	assert.Equal(t, "tienda_maria", body["store_name"])
}

// Caso 2: sin cookie → HTTP 401.
func TestSessionMiddleware_SinCookie(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin cookie de sesión no debe haber acceso")
}

// Caso 3: cookie firmada con otro secreto → HTTP 401.
func TestSessionMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, sessionToken(t, "otro-secreto"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cookie firmada con otro secreto debe rechazarse")
}

// Caso 4: cookie con basura → HTTP 401.
func TestSessionMiddleware_TokenCorrupto(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "no-es-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
