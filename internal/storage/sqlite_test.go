package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

func newSQLiteStore(t *testing.T) *SQLiteBookingStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.db")
	store, err := NewSQLiteBookingStore(path, logger.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		FullName:       "Анна Петрова",
		Email:          "anna@example.com",
		Phone:          "+7 701 555 0101",
		Date:           "2026-09-12",
		Time:           "19:30",
		Guests:         4,
		Notes:          "у окна",
		CartTotalMinor: 5200,
		CartTotal:      "₸52",
	}
}

func TestSQLiteBookingRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	id, err := store.CreateBooking(ctx, sampleBooking())
	require.NoError(t, err)
	require.NotZero(t, id)

	lines := []models.BookingLineItem{
		{BookingID: id, MenuItemID: 5, Title: "Борщ", Quantity: 2, UnitPriceMinorUnits: 1400, LineTotalMinorUnits: 2800},
		{BookingID: id, MenuItemID: 2, Title: "Стейк", Quantity: 1, UnitPriceMinorUnits: 2400, LineTotalMinorUnits: 2400},
	}
	require.NoError(t, store.AttachLineItems(ctx, id, lines))

	b, err := store.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Анна Петрова", b.FullName)
	assert.Equal(t, "anna@example.com", b.Email)
	assert.Equal(t, 4, b.Guests)
	assert.Equal(t, "у окна", b.Notes)
	assert.Equal(t, "₸52", b.CartTotal)
	assert.Equal(t, int64(5200), b.CartTotalMinor)

	got, err := store.ListLineItems(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestSQLiteListNewestFirst(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	first, err := store.CreateBooking(ctx, sampleBooking())
	require.NoError(t, err)
	second, err := store.CreateBooking(ctx, sampleBooking())
	require.NoError(t, err)

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second, bookings[0].ID)
	assert.Equal(t, first, bookings[1].ID)
}

func TestSQLiteGetBookingNotFound(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.GetBooking(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// TestSQLiteAdditiveMigration opens a database created by an older schema
// and verifies the new columns are added without losing the old rows.
func TestSQLiteAdditiveMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.db")

	legacy, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		CREATE TABLE bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			guests INTEGER NOT NULL,
			comment TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		INSERT INTO bookings (name, phone, date, time, guests, comment)
		VALUES ('Иван Сидоров', '+7 702 555 0202', '2026-08-01', '18:00', 2, 'юбилей')`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	store, err := NewSQLiteBookingStore(path, logger.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	// The legacy row survives; its comment serves as notes.
	b, err := store.GetBooking(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Иван Сидоров", b.FullName)
	assert.Equal(t, "юбилей", b.Notes)
	assert.Empty(t, b.Email)

	lines, err := store.ListLineItems(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// New-schema writes work against the migrated table.
	id, err := store.CreateBooking(ctx, sampleBooking())
	require.NoError(t, err)
	b, err = store.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", b.Email)
}

func TestSQLiteMigrationIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.db")

	store, err := NewSQLiteBookingStore(path, logger.NewLogger())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs initTables again over the fully migrated schema.
	store, err = NewSQLiteBookingStore(path, logger.NewLogger())
	require.NoError(t, err)
	store.Close()
}

func TestSQLiteMalformedLineItemBlob(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	id, err := store.CreateBooking(ctx, sampleBooking())
	require.NoError(t, err)

	_, err = store.db.ExecContext(ctx,
		`UPDATE bookings SET cart_items = ? WHERE id = ?`, "{broken", id)
	require.NoError(t, err)

	lines, err := store.ListLineItems(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, lines, "a malformed blob degrades to an empty order")

	// The booking itself is still readable.
	b, err := store.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Анна Петрова", b.FullName)
}

func TestSQLiteListLineItemsMissingBooking(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.ListLineItems(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
