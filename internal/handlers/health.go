package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/homemadefoods/orderbot-backend/internal/services"
	"github.com/homemadefoods/orderbot-backend/internal/storage"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version  string
	sessions *services.SessionManager
	store    storage.OrderStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, sessions *services.SessionManager, store storage.OrderStore) *HealthHandler {
	return &HealthHandler{
		Version:  version,
		sessions: sessions,
		store:    store,
	}
}

// Check returns the health status of the service, probing the order
// store with a bounded count query.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	statusCode := fiber.StatusOK

	orders, err := h.store.CountOrders(ctx)
	if err != nil {
		status = "unhealthy"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"version": h.Version,
		"orders":  orders,
		"services": fiber.Map{
			"store":    err == nil,
			"sessions": h.sessions.ActiveSessions(),
		},
	})
}
