package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homemadefoods/orderbot-backend/internal/models"
)

func TestMemoryStoreCreateOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	saved, err := store.CreateOrder(ctx, &models.Order{
		Category: models.CategoryOils,
		Item:     "Coconut Oil",
		Quantity: "1 liter",
		Name:     "John",
		Mobile:   "9876543210",
		Address:  "12 Main Street",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD00001", saved.OrderID)

	second, err := store.CreateOrder(ctx, &models.Order{Mobile: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "ORD00002", second.OrderID)

	count, err := store.CountOrders(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMemoryStoreGetOrdersByMobile(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateOrder(ctx, &models.Order{Mobile: "9876543210"})
	require.NoError(t, err)
	_, err = store.CreateOrder(ctx, &models.Order{Mobile: "1234567890"})
	require.NoError(t, err)

	orders, err := store.GetOrdersByMobile(ctx, "9876543210")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = store.GetOrdersByMobile(ctx, "0000000000")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMemoryStoreHonorsCancelledContext(t *testing.T) {
	store := NewMemoryStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CreateOrder(ctx, &models.Order{})
	assert.Error(t, err)
}
