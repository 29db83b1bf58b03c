package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/homemadefoods/orderbot-backend/internal/services"
)

// ChatHandler exposes the conversation engine over plain JSON
type ChatHandler struct {
	conversations *services.ConversationService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(conversations *services.ConversationService) *ChatHandler {
	return &ChatHandler{conversations: conversations}
}

// ChatRequest is one inbound turn
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse carries the reply verbatim
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat processes one (user_id, message) turn and returns the reply
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chat payload",
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	reply, err := h.conversations.ProcessMessage(c.UserContext(), req.UserID, req.Message)
	if err != nil {
		// Internal failure detail never reaches the user
		log.Printf("Error processing message: %v", err)
		reply = "❌ Sorry, something went wrong. Please try again."
	}

	return c.JSON(ChatResponse{Reply: reply})
}
