package storage

import (
	"context"
	"sync"

	"github.com/homemadefoods/orderbot-backend/internal/models"
)

var (
	storeInstance OrderStore
	storeMu       sync.RWMutex
)

// SetStore sets the global store instance (call from main.go)
func SetStore(s OrderStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() OrderStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return storeInstance
}

// OrderStore defines the interface for order persistence. The append is
// the one potentially slow call in the system, so every operation takes
// a context for deadline control.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrdersByMobile(ctx context.Context, mobile string) ([]*models.Order, error)
	CountOrders(ctx context.Context) (int64, error)
}
