package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homemadefoods/orderbot-backend/internal/models"
	"github.com/homemadefoods/orderbot-backend/internal/storage"
)

// greetingTokens restart the conversation from any step
var greetingTokens = map[string]bool{
	"hi":    true,
	"hii":   true,
	"hello": true,
	"hey":   true,
	"start": true,
}

const defaultOrderTimeout = 10 * time.Second

// ConversationService drives the order-taking state machine. It is the
// sole holder of the step-transition rules and input validation.
type ConversationService struct {
	sessions     *SessionManager
	store        storage.OrderStore
	orderTimeout time.Duration
}

// NewConversationService creates the conversation engine
func NewConversationService(sessions *SessionManager, store storage.OrderStore, orderTimeout time.Duration) *ConversationService {
	if orderTimeout <= 0 {
		orderTimeout = defaultOrderTimeout
	}
	return &ConversationService{
		sessions:     sessions,
		store:        store,
		orderTimeout: orderTimeout,
	}
}

// ProcessMessage handles one inbound turn for a user and returns the
// reply. Bad input never surfaces as an error; the user always gets a
// corrective prompt instead.
func (s *ConversationService) ProcessMessage(ctx context.Context, userID, message string) (string, error) {
	release := s.sessions.Acquire(userID)
	defer release()

	raw := strings.TrimSpace(message)
	msg := strings.ToLower(raw)

	log.Printf("💬 Turn from %s: %q", userID, raw)

	// A greeting always restarts, whatever the current step. Prior
	// progress is discarded.
	if greetingTokens[msg] {
		s.sessions.Reset(userID)
		return categoryPrompt(), nil
	}

	session := s.sessions.GetOrCreate(userID)

	switch session.Step {
	case models.StepCategory:
		return s.handleCategory(session, msg), nil
	case models.StepItem:
		return s.handleItem(session, msg), nil
	case models.StepQuantity:
		return s.handleQuantity(session, raw), nil
	case models.StepName:
		return s.handleName(session, raw), nil
	case models.StepMobile:
		return s.handleMobile(session, msg), nil
	case models.StepAddress:
		return s.handleAddress(ctx, session, raw), nil
	default:
		// Unreachable while Step stays within the declared set
		return "⚠️ Please type *Hi* to start again.", nil
	}
}

func (s *ConversationService) handleCategory(session *models.Session, msg string) string {
	category, menu, ok := models.ResolveCategory(msg)
	if !ok {
		return "❌ Invalid choice. Reply with 1 (Oils) or 2 (Snacks)."
	}

	session.Category = category
	session.Menu = menu
	session.Step = models.StepItem

	return fmt.Sprintf(
		"🛒 *%s Menu*\n\n%s\n\n✍️ Please reply with item number",
		session.Category, session.Menu.Render(),
	)
}

func (s *ConversationService) handleItem(session *models.Session, msg string) string {
	item, ok := session.Menu.Lookup(msg)
	if !ok {
		return "❌ Invalid item. Please select from the list."
	}

	session.Item = item
	session.Step = models.StepQuantity

	return fmt.Sprintf("📦 You selected *%s*.\nEnter quantity (e.g., 1 kg / 2 liters)", session.Item)
}

// Quantity accepts any text, including empty. Intentional permissiveness.
func (s *ConversationService) handleQuantity(session *models.Session, raw string) string {
	session.Quantity = raw
	session.Step = models.StepName

	return "👤 Please enter your name"
}

func (s *ConversationService) handleName(session *models.Session, raw string) string {
	session.Name = titleCase(raw)
	session.Step = models.StepMobile

	return "📞 Please enter your mobile number"
}

func (s *ConversationService) handleMobile(session *models.Session, msg string) string {
	if !isDigits(msg) || len(msg) < 10 {
		return "❌ Please enter a valid 10-digit mobile number"
	}

	session.Mobile = msg
	session.Step = models.StepAddress

	return "🏠 Please enter your delivery address"
}

// handleAddress completes the order: persist first, clear the session
// only after the store confirms the append. On failure the session stays
// parked here so any follow-up message retries the save.
func (s *ConversationService) handleAddress(ctx context.Context, session *models.Session, raw string) string {
	session.Address = titleCase(raw)

	order := &models.Order{
		Category: session.Category,
		Item:     session.Item,
		Quantity: session.Quantity,
		Name:     session.Name,
		Mobile:   session.Mobile,
		Address:  session.Address,
	}

	ctx, cancel := context.WithTimeout(ctx, s.orderTimeout)
	defer cancel()

	saved, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		log.Printf("❌ Failed to persist order for %s: %v", session.UserID, err)
		return "⚠️ We couldn't save your order just now. Please try again in a moment."
	}

	s.sessions.Remove(session.UserID)
	log.Printf("✅ Order %s persisted for %s", saved.OrderID, session.UserID)

	return fmt.Sprintf(
		"✅ *Order Confirmed!*\n\n🧾 Order ID: %s\n📦 Your order has been placed successfully.\n📞 Our team will contact you shortly.\n\n🙏 Thank you for choosing Home Made Foods!",
		saved.OrderID,
	)
}

func categoryPrompt() string {
	return "👋 Hello! Welcome to Home Made Foods 😊\n\n" +
		"Please choose one option:\n" +
		"1️⃣ Oils\n" +
		"2️⃣ Snacks\n\n" +
		"✍️ Reply with 1 or 2"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// titleCase builds the caser per call; cases.Caser carries internal
// state and is not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
