package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/homemadefoods/orderbot-backend/internal/services"
)

// WhatsAppHandler handles WhatsApp webhook requests
type WhatsAppHandler struct {
	conversations *services.ConversationService
	twilioService *services.TwilioService
}

// NewWhatsAppHandler creates a new WhatsApp handler. twilioService may be
// nil when credentials are absent; replies are then only logged.
func NewWhatsAppHandler(conversations *services.ConversationService, twilioService *services.TwilioService) *WhatsAppHandler {
	return &WhatsAppHandler{
		conversations: conversations,
		twilioService: twilioService,
	}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid string `form:"MessageSid"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From"` // WhatsApp number (whatsapp:+919876543210)
	To         string `form:"To"`
	Body       string `form:"Body"` // Message text
	NumMedia   string `form:"NumMedia"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	log.Printf("📱 WhatsApp message from %s: %s", payload.From, payload.Body)

	// Process only incoming messages, not status updates
	if payload.Body != "" && payload.From != "" {
		from := strings.TrimPrefix(payload.From, "whatsapp:")

		reply, err := h.conversations.ProcessMessage(c.UserContext(), from, payload.Body)
		if err != nil {
			log.Printf("Error processing message: %v", err)
			reply = "❌ Sorry, something went wrong. Please try again."
		}

		if h.twilioService != nil && reply != "" {
			if err := h.twilioService.SendWhatsAppMessage(from, reply); err != nil {
				log.Printf("❌ Failed to send WhatsApp response: %v", err)
			}
		} else {
			log.Printf("📤 Response (not sent - Twilio not configured): %s", reply)
		}
	}

	// Acknowledge webhook receipt
	return c.SendStatus(fiber.StatusOK)
}
