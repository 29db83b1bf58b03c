package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/homemadefoods/orderbot-backend/internal/config"
	"github.com/homemadefoods/orderbot-backend/internal/handlers"
	"github.com/homemadefoods/orderbot-backend/internal/middleware"
	"github.com/homemadefoods/orderbot-backend/internal/services"
	"github.com/homemadefoods/orderbot-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	cfg *config.Config,
	conversations *services.ConversationService,
	sessions *services.SessionManager,
	twilioService *services.TwilioService,
	store storage.OrderStore,
) {
	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Home Made Foods Chatbot!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":  "/health",
				"chat":    "/chat",
				"webhook": "/webhook/whatsapp",
			},
		})
	})

	healthHandler := handlers.NewHealthHandler("1.0.0", sessions, store)
	app.Get("/health", healthHandler.Check)

	// Plain JSON façade: one turn in, one reply out
	chatHandler := handlers.NewChatHandler(conversations)
	app.Post("/chat", chatHandler.HandleChat)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")
	whatsappHandler := handlers.NewWhatsAppHandler(conversations, twilioService)

	if cfg.Environment == "development" || cfg.DisableWebhookValidation {
		// Development: skip validation for ngrok
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
		log.Println("⚠️  WhatsApp webhook validation DISABLED for development")
	} else {
		// Production: validate webhook signature
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(cfg.TwilioAuthToken), whatsappHandler.HandleWebhook)
	}
}
