package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homemadefoods/orderbot-backend/internal/models"
	"github.com/homemadefoods/orderbot-backend/internal/services"
	"github.com/homemadefoods/orderbot-backend/internal/storage"
)

func newWebhookApp() (*fiber.App, *services.SessionManager) {
	sessions := services.NewSessionManager(0)
	store := storage.NewMemoryStore()
	engine := services.NewConversationService(sessions, store, 0)

	app := fiber.New()
	// No Twilio service wired: replies are logged, the webhook still acks
	app.Post("/webhook/whatsapp", NewWhatsAppHandler(engine, nil).HandleWebhook)
	return app, sessions
}

func postWebhook(t *testing.T, app *fiber.App, from, body string) int {
	t.Helper()

	form := url.Values{}
	form.Set("From", from)
	form.Set("Body", body)

	req := httptest.NewRequest(fiber.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestWebhookProcessesTurnAndAcks(t *testing.T) {
	app, sessions := newWebhookApp()

	status := postWebhook(t, app, "whatsapp:+919876543210", "hi")
	assert.Equal(t, fiber.StatusOK, status)

	// The whatsapp: prefix is stripped before the session is keyed
	session, exists := sessions.Get("+919876543210")
	require.True(t, exists)
	assert.Equal(t, models.StepCategory, session.Step)
}

func TestWebhookIgnoresStatusUpdates(t *testing.T) {
	app, sessions := newWebhookApp()

	// Empty body means a delivery status callback, not a message
	status := postWebhook(t, app, "whatsapp:+919876543210", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0, sessions.ActiveSessions())
}
