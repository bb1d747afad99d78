package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/money"
)

// SQLiteBookingStore is the local embedded booking backend. Line items are
// stored denormalized as a JSON blob on the booking row; the schema is
// evolved additively so an upgraded binary never loses old bookings.
type SQLiteBookingStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewSQLiteBookingStore(path string, log *logger.Logger) (*SQLiteBookingStore, error) {
	log.LogDatabase("CONNECT", "sqlite", fmt.Sprintf("Opening bookings database at %s", path))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookings database: %w", err)
	}
	// modernc sqlite is single-writer.
	db.SetMaxOpenConns(1)

	store := &SQLiteBookingStore{db: db, log: log}
	if err := store.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	log.LogDatabase("SUCCESS", "sqlite", "Bookings table ready")
	return store, nil
}

func (s *SQLiteBookingStore) initTables() error {
	query := `
    CREATE TABLE IF NOT EXISTS bookings (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        phone TEXT NOT NULL,
        date TEXT NOT NULL,
        time TEXT NOT NULL,
        guests INTEGER NOT NULL,
        comment TEXT,
        created_at TEXT DEFAULT CURRENT_TIMESTAMP
    )`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	// Additive migrations only: columns introduced by later versions are
	// added to an existing database, never dropped or renamed.
	migrations := []struct{ col, colSQL string }{
		{"email", "TEXT"},
		{"notes", "TEXT"},
		{"cart_items", "TEXT"},
		{"cart_total", "TEXT"},
	}
	for _, m := range migrations {
		if err := s.ensureColumn("bookings", m.col, m.colSQL); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteBookingStore) tableColumns(table string) (map[string]bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

func (s *SQLiteBookingStore) ensureColumn(table, col, colSQL string) error {
	cols, err := s.tableColumns(table)
	if err != nil {
		return fmt.Errorf("failed to inspect %s columns: %w", table, err)
	}
	if cols[col] {
		return nil
	}
	s.log.LogDatabase("MIGRATE", "sqlite", fmt.Sprintf("Adding column %s.%s", table, col))
	_, err = s.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col, colSQL))
	return err
}

func (s *SQLiteBookingStore) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (name, email, phone, date, time, guests, comment, notes, cart_total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.FullName, b.Email, b.Phone, b.Date, b.Time, b.Guests, b.Notes, b.Notes,
		money.FormatMinor(b.CartTotalMinor),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read booking id: %w", err)
	}
	b.ID = id
	return id, nil
}

// AttachLineItems encodes the snapshot lines onto the booking row itself.
func (s *SQLiteBookingStore) AttachLineItems(ctx context.Context, bookingID int64, lines []models.BookingLineItem) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode line items: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE bookings SET cart_items = ? WHERE id = ?`, string(data), bookingID)
	if err != nil {
		return fmt.Errorf("failed to attach line items: %w", err)
	}
	return nil
}

const bookingColumns = "id, name, email, phone, date, time, guests, notes, comment, cart_total, created_at"

func (s *SQLiteBookingStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (s *SQLiteBookingStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = ?", id)
	b, err := scanBookingRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListLineItems decodes the blob stored on the booking row. A malformed
// blob degrades to an empty list rather than failing the whole view.
func (s *SQLiteBookingStore) ListLineItems(ctx context.Context, bookingID int64) ([]models.BookingLineItem, error) {
	var blob sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT cart_items FROM bookings WHERE id = ?`, bookingID).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read line items: %w", err)
	}
	if !blob.Valid || blob.String == "" {
		return []models.BookingLineItem{}, nil
	}

	var lines []models.BookingLineItem
	if err := json.Unmarshal([]byte(blob.String), &lines); err != nil {
		s.log.Warn("DATABASE", fmt.Sprintf("Malformed cart_items blob on booking %d, returning empty order", bookingID))
		return []models.BookingLineItem{}, nil
	}
	return lines, nil
}

func (s *SQLiteBookingStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRow(row rowScanner) (*models.Booking, error) {
	var (
		b         models.Booking
		email     sql.NullString
		notes     sql.NullString
		comment   sql.NullString
		total     sql.NullString
		createdAt sql.NullString
	)
	err := row.Scan(&b.ID, &b.FullName, &email, &b.Phone, &b.Date, &b.Time,
		&b.Guests, &notes, &comment, &total, &createdAt)
	if err != nil {
		return nil, err
	}

	b.Email = email.String
	b.Notes = notes.String
	if b.Notes == "" {
		// Rows written before the notes migration carry only comment.
		b.Notes = comment.String
	}
	b.CartTotal = total.String
	b.CartTotalMinor = money.ToMinorUnits(total.String)
	if createdAt.Valid {
		if ts, err := time.Parse("2006-01-02 15:04:05", createdAt.String); err == nil {
			b.CreatedAt = ts
		}
	}
	return &b, nil
}
