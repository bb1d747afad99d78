// Package booking freezes a priced cart view into a persisted booking and
// its line items at submission time. Line items are snapshot copies, never
// live references: a booking's recorded order can not be altered by later
// catalog edits.
package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"restaurant-backend/internal/cart"
	"restaurant-backend/internal/kafka"
	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/money"
	"restaurant-backend/internal/storage"
)

const (
	minGuests = 1
	maxGuests = 20
)

// Validation reason classes. Out-of-range and unparseable guest counts are
// deliberately the same class.
const (
	ReasonMissingField = "missing_field"
	ReasonGuestCount   = "guest_count"
)

// ValidationError reports the first failed check of a submission.
// Validation is fail-fast: one error at a time.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	errMissingFields = &ValidationError{
		Reason:  ReasonMissingField,
		Message: "name, phone, date, time and guest count are required",
	}
	errGuestCount = &ValidationError{
		Reason:  ReasonGuestCount,
		Message: fmt.Sprintf("guest count must be between %d and %d", minGuests, maxGuests),
	}
)

// Service builds and persists booking snapshots.
type Service struct {
	store    storage.BookingStore
	engine   *cart.Engine
	producer *kafka.Producer
	log      *logger.Logger
}

func NewService(store storage.BookingStore, engine *cart.Engine, producer *kafka.Producer, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		engine:   engine,
		producer: producer,
		log:      log,
	}
}

// Submit validates the form, prices the session cart against the current
// catalog, and persists the booking plus snapshot line items. On any
// persistence failure the cart is left untouched so the guest can retry;
// on success it is cleared unconditionally.
func (s *Service) Submit(ctx context.Context, req models.BookingRequest, c models.Cart) (*models.Booking, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	date := strings.TrimSpace(req.Date)
	bookingTime := strings.TrimSpace(req.Time)
	guestsRaw := strings.TrimSpace(req.Guests)

	if fullName == "" || phone == "" || date == "" || bookingTime == "" || guestsRaw == "" {
		return nil, errMissingFields
	}

	guests, err := strconv.Atoi(guestsRaw)
	if err != nil || guests < minGuests || guests > maxGuests {
		return nil, errGuestCount
	}

	view := s.engine.BuildView(ctx, c)

	b := &models.Booking{
		FullName:       fullName,
		Email:          strings.TrimSpace(req.Email),
		Phone:          phone,
		Date:           date,
		Time:           bookingTime,
		Guests:         guests,
		Notes:          strings.TrimSpace(req.Notes),
		CartTotalMinor: view.TotalMinorUnits,
		CartTotal:      money.FormatMinor(view.TotalMinorUnits),
		CreatedAt:      time.Now(),
	}

	id, err := s.store.CreateBooking(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	lines := snapshotLines(id, view)
	if err := s.store.AttachLineItems(ctx, id, lines); err != nil {
		// The booking row exists without its order detail. Surface the
		// partial state instead of silently presenting an incomplete order.
		s.log.Error("BOOKING", fmt.Sprintf("Booking %d persisted but line items failed: %v", id, err))
		return nil, fmt.Errorf("failed to persist booking order: %w", err)
	}

	s.publishCreated(b)
	c.Clear()

	s.log.Info("BOOKING", fmt.Sprintf("Booking %d created for %s (%d guests, %s total)",
		id, b.FullName, b.Guests, b.CartTotal))
	return b, nil
}

// snapshotLines copies the surviving cart lines by value.
func snapshotLines(bookingID int64, view models.CartView) []models.BookingLineItem {
	lines := make([]models.BookingLineItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, models.BookingLineItem{
			BookingID:           bookingID,
			MenuItemID:          line.ItemID,
			Title:               line.Title,
			Quantity:            line.Quantity,
			UnitPriceMinorUnits: line.UnitPriceMinorUnits,
			LineTotalMinorUnits: line.LineTotalMinorUnits,
			ImagePath:           strings.TrimPrefix(line.ImagePath, "/"),
		})
	}
	return lines
}

func (s *Service) publishCreated(b *models.Booking) {
	if s.producer == nil {
		return
	}
	event := &models.BookingEvent{
		Type:      "booking.created",
		BookingID: b.ID,
		Booking:   b,
		Timestamp: time.Now(),
	}
	if err := s.producer.PublishBookingEvent(event); err != nil {
		s.log.Warn("KAFKA", fmt.Sprintf("Failed to publish booking.created for %d: %v", b.ID, err))
	}
}

// List returns all bookings, most recent first.
func (s *Service) List(ctx context.Context) ([]models.Booking, error) {
	return s.store.ListBookings(ctx)
}

// Get returns one booking with its snapshot line items. A malformed stored
// order degrades to an empty line list, never a failed view.
func (s *Service) Get(ctx context.Context, id int64) (*models.Booking, []models.BookingLineItem, error) {
	b, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.store.ListLineItems(ctx, id)
	if err != nil {
		s.log.Warn("BOOKING", fmt.Sprintf("Failed to load line items for booking %d: %v", id, err))
		lines = []models.BookingLineItem{}
	}
	return b, lines, nil
}
