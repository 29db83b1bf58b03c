package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/homemadefoods/orderbot-backend/internal/models"
)

// DatabaseStore persists orders to PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed order store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (d *DatabaseStore) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := d.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (d *DatabaseStore) GetOrdersByMobile(ctx context.Context, mobile string) ([]*models.Order, error) {
	var orders []*models.Order
	err := d.db.WithContext(ctx).
		Where("mobile = ?", mobile).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("orders by mobile: %w", err)
	}
	return orders, nil
}

func (d *DatabaseStore) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
