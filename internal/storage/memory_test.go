package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/models"
)

// Categories must come back in insertion order, never alphabetical: the
// first category is the menu's default section, and admin-added categories
// append at the end.
func TestMemoryStoreCategoryOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seeded := []models.Category{
		{Slug: "zakuski", Label: "Закуски"},
		{Slug: "mains", Label: "Основные блюда"},
		{Slug: "desserts", Label: "Десерты"},
		{Slug: "drinks", Label: "Напитки"},
	}
	for _, cat := range seeded {
		require.NoError(t, store.UpsertCategory(ctx, cat))
	}

	cats, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 4)
	// Alphabetical order would put desserts first.
	assert.Equal(t, "zakuski", cats[0].Slug)
	assert.Equal(t, "drinks", cats[3].Slug)

	// "aaa-specials" sorts before every seeded slug; insertion order still
	// appends it last.
	require.NoError(t, store.UpsertCategory(ctx, models.Category{Slug: "aaa-specials", Label: "Спецпредложения"}))

	cats, err = store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 5)
	assert.Equal(t, "aaa-specials", cats[4].Slug)

	// Relabeling keeps a category's position.
	require.NoError(t, store.UpsertCategory(ctx, models.Category{Slug: "mains", Label: "Горячее"}))

	cats, err = store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mains", cats[1].Slug)
	assert.Equal(t, "Горячее", cats[1].Label)
	assert.Equal(t, "zakuski", cats[0].Slug)
}
