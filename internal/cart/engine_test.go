package cart

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/catalog"
	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/storage"
)

func newEngine(t *testing.T) (*Engine, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.UpsertCategory(ctx, models.Category{Slug: "mains", Label: "Основные блюда"}))
	svc := catalog.NewService(store, true, logger.NewLogger())
	return NewEngine(svc), store
}

func addItem(t *testing.T, store *storage.MemoryStore, title string, priceMinor int64) int64 {
	t.Helper()
	item := models.MenuItem{CategorySlug: "mains", Title: title, PriceMinorUnits: priceMinor}
	id, err := store.InsertMenuItem(context.Background(), &item)
	require.NoError(t, err)
	return id
}

func TestBuildViewTotals(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	addItem(t, store, "Оливье", 900)
	steak := addItem(t, store, "Стейк", 2400)
	addItem(t, store, "Чай", 300)
	addItem(t, store, "Морс", 400)
	borsch := addItem(t, store, "Борщ", 1400)

	c := models.Cart{}
	c.Increment(borsch, 2)
	c.Increment(steak, 1)

	view := engine.BuildView(ctx, c)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, 3, view.TotalQuantity)
	assert.Equal(t, int64(5200), view.TotalMinorUnits)
	assert.Equal(t, "₸52", view.TotalDisplay)

	// Lines come back in item-id order regardless of insertion order.
	assert.Equal(t, steak, view.Lines[0].ItemID)
	assert.Equal(t, int64(2800), view.Lines[1].LineTotalMinorUnits)
	assert.Equal(t, "₸28", view.Lines[1].LineTotalDisplay)
}

func TestBuildViewSkipsVanishedItems(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	kept := addItem(t, store, "Оливье", 900)
	gone := addItem(t, store, "Сезонный суп", 700)

	c := models.Cart{}
	c.Increment(kept, 1)
	c.Increment(gone, 3)

	store.RemoveMenuItem(gone)
	view := engine.BuildView(ctx, c)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, kept, view.Lines[0].ItemID)
	assert.Equal(t, int64(900), view.TotalMinorUnits)
	assert.Equal(t, 1, view.TotalQuantity)
}

func TestBuildViewDisplayPriceFallback(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	item := models.MenuItem{CategorySlug: "mains", Title: "Лимонад", Price: "₸12"}
	id, err := store.InsertMenuItem(ctx, &item)
	require.NoError(t, err)

	c := models.Cart{strconv.FormatInt(id, 10): 1}
	view := engine.BuildView(ctx, c)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(1200), view.Lines[0].UnitPriceMinorUnits)
	assert.Equal(t, "₸12", view.Lines[0].UnitPriceDisplay)
}

func TestBuildViewDropsInvalidEntries(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	id := addItem(t, store, "Чай", 300)

	c := models.Cart{
		strconv.FormatInt(id, 10): 2,
		"not-a-number":            5,
		"999":                     0,
	}
	view := engine.BuildView(ctx, c)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(600), view.TotalMinorUnits)
	assert.Equal(t, 2, view.TotalQuantity)
}

func TestBuildViewEmptyCart(t *testing.T) {
	engine, _ := newEngine(t)

	view := engine.BuildView(context.Background(), models.Cart{})

	assert.NotNil(t, view.Lines)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.TotalMinorUnits)
	assert.Equal(t, "₸0", view.TotalDisplay)
}
