package models

import "time"

// Step identifies the stage of the order conversation. The engine
// dispatches on it exhaustively; a session's step is always one of the
// six values below while the session exists.
type Step string

const (
	StepCategory Step = "category"
	StepItem     Step = "item"
	StepQuantity Step = "quantity"
	StepName     Step = "name"
	StepMobile   Step = "mobile"
	StepAddress  Step = "address"
)

// Session stores the accumulated state of one user's in-flight order
// conversation. Fields are populated incrementally, one per step.
type Session struct {
	UserID     string    `json:"user_id"`
	Step       Step      `json:"step"`
	Category   string    `json:"category"`
	Menu       Menu      `json:"menu"` // resolved once in the category step
	Item       string    `json:"item"`
	Quantity   string    `json:"quantity"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}
