package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBeforeCreateGeneratesReference(t *testing.T) {
	order := &Order{Category: CategoryOils, Item: "Coconut Oil"}

	require.NoError(t, order.BeforeCreate(nil))
	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))

	// An existing reference is preserved
	order = &Order{OrderID: "ORD-KEEPME"}
	require.NoError(t, order.BeforeCreate(nil))
	assert.Equal(t, "ORD-KEEPME", order.OrderID)
}

func TestNewOrderIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewOrderID(), NewOrderID())
}
