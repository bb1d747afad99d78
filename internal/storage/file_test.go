package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

var testSeedCats = []models.Category{
	{Slug: "zakuski", Label: "Закуски"},
	{Slug: "mains", Label: "Основные блюда"},
}

func newFileStore(t *testing.T) (*FileCatalogStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	return NewFileCatalogStore(path, testSeedCats, logger.NewLogger()), path
}

func TestFileStoreSeedsOnFirstRun(t *testing.T) {
	store, path := newFileStore(t)
	ctx := context.Background()

	cats, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSeedCats, cats)

	items, err := store.ListMenuItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "seeding must never add menu items")

	// The seeded file is written back immediately.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cat models.Catalog
	require.NoError(t, json.Unmarshal(data, &cat))
	assert.Len(t, cat.Categories, 2)
}

func TestFileStoreSeedsOverCorruptFile(t *testing.T) {
	store, path := newFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cats, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testSeedCats, cats)
}

func TestFileStoreTrustsCuratedFile(t *testing.T) {
	store, path := newFileStore(t)

	// One operator-written category and a deliberately empty item list.
	curated := models.Catalog{
		Categories: []models.Category{{Slug: "specials", Label: "Спецпредложения"}},
		Items:      []models.MenuItem{},
	}
	data, err := json.Marshal(curated)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cats, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "specials", cats[0].Slug)

	items, err := store.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "an empty curated menu stays empty")
}

func TestFileStoreInsertAssignsMaxPlusOne(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	first := models.MenuItem{CategorySlug: "mains", Title: "Борщ", PriceMinorUnits: 1400}
	id, err := store.InsertMenuItem(ctx, &first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// Write an item with a high id directly, then insert through the store.
	gap := models.MenuItem{ID: 7, CategorySlug: "mains", Title: "Стейк", PriceMinorUnits: 2400}
	catalog := models.Catalog{Categories: testSeedCats, Items: []models.MenuItem{first, gap}}
	require.NoError(t, store.save(catalog))

	next := models.MenuItem{CategorySlug: "mains", Title: "Чай", PriceMinorUnits: 300}
	id, err = store.InsertMenuItem(ctx, &next)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestFileStoreUpsertCategoryRelabels(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertCategory(ctx, models.Category{Slug: "mains", Label: "Горячее"}))

	cats, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2, "upsert on an existing slug must not add a category")
	assert.Equal(t, "Горячее", cats[1].Label)
}

func TestFileStoreGetMenuItem(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	item := models.MenuItem{CategorySlug: "mains", Title: "Оливье", PriceMinorUnits: 900}
	id, err := store.InsertMenuItem(ctx, &item)
	require.NoError(t, err)

	got, err := store.GetMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Оливье", got.Title)

	_, err = store.GetMenuItem(ctx, 404)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	store, path := newFileStore(t)
	ctx := context.Background()

	item := models.MenuItem{CategorySlug: "zakuski", Title: "Сельдь", PriceMinorUnits: 800}
	id, err := store.InsertMenuItem(ctx, &item)
	require.NoError(t, err)

	reopened := NewFileCatalogStore(path, testSeedCats, logger.NewLogger())
	got, err := reopened.GetMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Сельдь", got.Title)
}
