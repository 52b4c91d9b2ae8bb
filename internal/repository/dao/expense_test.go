package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseDAOInsertAndFindAll(t *testing.T) {
	db := setupTestDB(t)
	d := NewExpenseDAO(db)
	ctx := context.Background()

	for _, e := range []Expense{
		{Description: "Rent", Amount: 1200, Category: "fixed", Date: "2026-08-01"},
		{Description: "Packaging supplies", Amount: 85.5, Category: "supplies", Date: "2026-08-15"},
		{Description: "Electricity", Amount: 140, Category: "utilities", Date: "2026-08-05"},
	} {
		_, err := d.Insert(ctx, e)
		require.NoError(t, err)
	}

	expenses, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 3)

	// Newest date first.
	assert.Equal(t, "Packaging supplies", expenses[0].Description)
	assert.Equal(t, "Electricity", expenses[1].Description)
	assert.Equal(t, "Rent", expenses[2].Description)
}

func TestExpenseDAODelete(t *testing.T) {
	db := setupTestDB(t)
	d := NewExpenseDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Expense{Description: "Ribbon", Amount: 12, Date: "2026-08-20"})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))

	expenses, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}
