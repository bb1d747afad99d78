package storage

import (
	"context"
	"errors"

	"restaurant-backend/internal/models"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// CatalogStore is the narrow read/write contract both catalog backends
// expose. The backend is chosen once at startup and injected; no call site
// re-checks which one is active.
type CatalogStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error)
	UpsertCategory(ctx context.Context, cat models.Category) error
	InsertMenuItem(ctx context.Context, item *models.MenuItem) (int64, error)
}

// BookingStore persists bookings and their snapshot line items. Line items
// are copies by value; later catalog edits never reach back into them.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) (int64, error)
	AttachLineItems(ctx context.Context, bookingID int64, lines []models.BookingLineItem) error
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	ListLineItems(ctx context.Context, bookingID int64) ([]models.BookingLineItem, error)
}
