package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDAOInsert(t *testing.T) {
	db := setupTestDB(t)
	d := NewCategoryDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Category{Name: "Romantic Gifts", Description: "Flowers, chocolates and the like"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	categories, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Romantic Gifts", categories[0].Name)
}

func TestCategoryDAOInsert_duplicateName(t *testing.T) {
	db := setupTestDB(t)
	d := NewCategoryDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, Category{Name: "Accessories"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Category{Name: "Accessories"})
	assert.ErrorIs(t, err, ErrCategoryNameExists)
}

func TestCategoryDAOFindAll_orderedByName(t *testing.T) {
	db := setupTestDB(t)
	d := NewCategoryDAO(db)
	ctx := context.Background()

	for _, name := range []string{"Other", "Kids Gifts", "Accessories"} {
		_, err := d.Insert(ctx, Category{Name: name})
		require.NoError(t, err)
	}

	categories, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Accessories", categories[0].Name)
	assert.Equal(t, "Kids Gifts", categories[1].Name)
	assert.Equal(t, "Other", categories[2].Name)
}
