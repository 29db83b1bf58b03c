package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homemadefoods/orderbot-backend/internal/services"
	"github.com/homemadefoods/orderbot-backend/internal/storage"
)

func newChatApp() *fiber.App {
	sessions := services.NewSessionManager(0)
	store := storage.NewMemoryStore()
	engine := services.NewConversationService(sessions, store, 0)

	app := fiber.New()
	app.Post("/chat", NewChatHandler(engine).HandleChat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body any) (*ChatResponse, int) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		return nil, resp.StatusCode
	}

	var chatResp ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&chatResp))
	return &chatResp, resp.StatusCode
}

func TestHandleChatTurn(t *testing.T) {
	app := newChatApp()

	resp, status := postChat(t, app, ChatRequest{UserID: "u1", Message: "hi"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, resp.Reply, "Welcome to Home Made Foods")

	resp, status = postChat(t, app, ChatRequest{UserID: "u1", Message: "2"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, resp.Reply, "Snacks Menu")
}

func TestHandleChatRequiresUserID(t *testing.T) {
	app := newChatApp()

	_, status := postChat(t, app, ChatRequest{Message: "hi"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleChatRejectsBadPayload(t *testing.T) {
	app := newChatApp()

	req := httptest.NewRequest(fiber.MethodPost, "/chat", bytes.NewReader([]byte("not json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
