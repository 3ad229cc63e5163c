package webhook_router

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astervia/wacraft-relay/src/config/env"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutedApp() *fiber.App {
	app := fiber.New()
	Route(app)
	return app
}

func setAppSecret(t *testing.T, secret string) {
	t.Helper()
	prev := env.MetaAppSecret
	env.MetaAppSecret = secret
	t.Cleanup(func() { env.MetaAppSecret = prev })
}

func sign(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func postUnsigned(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"entry": []}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealthReturnsOK(t *testing.T) {
	app := newRoutedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestWebhookPostSkipsSignatureCheckWhenSecretUnset(t *testing.T) {
	setAppSecret(t, "")
	app := newRoutedApp()

	resp := postUnsigned(t, app)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestWebhookPostRequiresSignatureWhenSecretSet(t *testing.T) {
	setAppSecret(t, "test-app-secret")
	app := newRoutedApp()

	resp := postUnsigned(t, app)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookPostAcceptsSignedRequestWhenSecretSet(t *testing.T) {
	setAppSecret(t, "test-app-secret")
	app := newRoutedApp()

	body := `{"entry": []}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Hub-Signature-256", sign(body, "test-app-secret"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
