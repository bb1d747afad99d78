package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"restaurant-backend/internal/models"
)

// MemoryStore implements both CatalogStore and BookingStore in process
// memory. It backs the test suites and has no durability.
type MemoryStore struct {
	categories map[string]models.Category
	catIDs     map[string]int64
	items      map[int64]models.MenuItem
	bookings   map[int64]models.Booking
	lines      map[int64][]models.BookingLineItem

	nextCatID     int64
	nextItemID    int64
	nextBookingID int64
	mutex         sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: make(map[string]models.Category),
		catIDs:     make(map[string]int64),
		items:      make(map[int64]models.MenuItem),
		bookings:   make(map[int64]models.Booking),
		lines:      make(map[int64][]models.BookingLineItem),
	}
}

// ListCategories returns categories ordered by insertion id, the same rule
// the postgres store applies. The first category is the menu's default
// section; relabeling keeps a category's position.
func (s *MemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	cats := make([]models.Category, 0, len(s.categories))
	for slug := range s.categories {
		cats = append(cats, s.categories[slug])
	}
	sort.Slice(cats, func(i, j int) bool {
		return s.catIDs[cats[i].Slug] < s.catIDs[cats[j].Slug]
	})
	return cats, nil
}

func (s *MemoryStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStore) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (s *MemoryStore) UpsertCategory(ctx context.Context, cat models.Category) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.catIDs[cat.Slug]; !exists {
		s.nextCatID++
		s.catIDs[cat.Slug] = s.nextCatID
	}
	s.categories[cat.Slug] = cat
	return nil
}

func (s *MemoryStore) InsertMenuItem(ctx context.Context, item *models.MenuItem) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextItemID++
	item.ID = s.nextItemID
	s.items[item.ID] = *item
	return item.ID, nil
}

// RemoveMenuItem exists for tests exercising stale-cart behavior.
func (s *MemoryStore) RemoveMenuItem(id int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.items, id)
}

func (s *MemoryStore) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextBookingID++
	b.ID = s.nextBookingID
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	s.bookings[b.ID] = *b
	return b.ID, nil
}

func (s *MemoryStore) AttachLineItems(ctx context.Context, bookingID int64, lines []models.BookingLineItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	copied := make([]models.BookingLineItem, len(lines))
	copy(copied, lines)
	for i := range copied {
		copied[i].BookingID = bookingID
	}
	s.lines[bookingID] = copied
	return nil
}

func (s *MemoryStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	bookings := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID > bookings[j].ID })
	return bookings, nil
}

func (s *MemoryStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	b, exists := s.bookings[id]
	if !exists {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (s *MemoryStore) ListLineItems(ctx context.Context, bookingID int64) ([]models.BookingLineItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lines := make([]models.BookingLineItem, len(s.lines[bookingID]))
	copy(lines, s.lines[bookingID])
	return lines, nil
}
