package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryMovementDAOInsertAndFindByProduct(t *testing.T) {
	db := setupTestDB(t)
	d := NewInventoryMovementDAO(db)
	ctx := context.Background()

	product, err := NewProductDAO(db).Insert(ctx, Product{Name: "Vase", Category: "Other", Price: 30, Cost: 12, Stock: 8})
	require.NoError(t, err)
	other, err := NewProductDAO(db).Insert(ctx, Product{Name: "Bowl", Category: "Other", Price: 20, Cost: 8, Stock: 4})
	require.NoError(t, err)

	orderID := uint(7)
	_, err = d.Insert(ctx, InventoryMovement{
		ProductID:    product.ID,
		MovementType: "out",
		Quantity:     2,
		Reason:       "Sale - Order #7",
		ReferenceID:  &orderID,
	})
	require.NoError(t, err)
	_, err = d.Insert(ctx, InventoryMovement{ProductID: other.ID, MovementType: "in", Quantity: 10, Reason: "Restock"})
	require.NoError(t, err)

	movements, err := d.FindByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)

	assert.Equal(t, "out", movements[0].MovementType)
	assert.Equal(t, 2, movements[0].Quantity)
	assert.Equal(t, "Sale - Order #7", movements[0].Reason)
	require.NotNil(t, movements[0].ReferenceID)
	assert.Equal(t, uint(7), *movements[0].ReferenceID)
}
