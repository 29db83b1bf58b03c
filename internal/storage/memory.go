package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/homemadefoods/orderbot-backend/internal/models"
)

// MemoryStore holds orders in memory for local development and tests
type MemoryStore struct {
	orders map[string]*models.Order

	orderMu sync.RWMutex

	// Counter for ID generation
	orderCounter int
}

// NewMemoryStore creates a new in-memory order store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[string]*models.Order),
	}
}

func (m *MemoryStore) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	m.orderCounter++
	if order.OrderID == "" {
		order.OrderID = fmt.Sprintf("ORD%05d", m.orderCounter)
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	m.orders[order.OrderID] = order
	return order, nil
}

func (m *MemoryStore) GetOrdersByMobile(ctx context.Context, mobile string) ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	var orders []*models.Order
	for _, order := range m.orders {
		if order.Mobile == mobile {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *MemoryStore) CountOrders(ctx context.Context) (int64, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	return int64(len(m.orders)), nil
}
