package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is one completed conversation persisted as a single row
type Order struct {
	gorm.Model

	OrderID  string `json:"order_id" gorm:"uniqueIndex"`
	Category string `json:"category"`
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile" gorm:"index"`
	Address  string `json:"address"`
}

// BeforeCreate hook to auto-generate the order reference
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == "" {
		o.OrderID = NewOrderID()
	}
	return nil
}

// NewOrderID generates a short human-readable order reference
func NewOrderID() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
}
