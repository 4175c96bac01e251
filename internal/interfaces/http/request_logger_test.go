package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/asset-balance-api/internal/interfaces/http"
	"github.com/jhoicas/asset-balance-api/pkg/logger"
)

// buildLoggedApp arma la misma cadena que cmd/api: access log por fuera de recover.
func buildLoggedApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "test", Level: "info", Output: buf})))
	app.Use(recover.New())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { panic("fallo inesperado") })
	return app
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[len(lines)-1], "debe existir una línea de access log")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogger_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
	entry := lastLogLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "/ok", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "info", entry["level"])
}

func TestRequestLogger_RegistraPanico(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "se genera un request id si el cliente no lo envía")
	entry := lastLogLine(t, &buf)
	assert.Equal(t, "/boom", entry["path"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, "error", entry["level"])
}
