package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/money"
)

// PostgresStore is the remote hosted backend. It serves both the catalog
// and bookings; booking line items are genuine related rows.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPostgresStore(ctx context.Context, cfg config.RemoteDBConfig, log *logger.Logger) (*PostgresStore, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode)
	log.LogDatabase("CONNECT", "postgres", fmt.Sprintf("Connecting to %s:%d/%s", cfg.Host, cfg.Port, cfg.Database))

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{pool: pool, log: log}
	if err := store.initTables(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	log.LogDatabase("SUCCESS", "postgres", "Connection established and tables ready")
	return store, nil
}

func (s *PostgresStore) initTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			label TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id BIGSERIAL PRIMARY KEY,
			category_slug TEXT NOT NULL REFERENCES categories(slug),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price_cents BIGINT NOT NULL DEFAULT 0,
			image_path TEXT NOT NULL DEFAULT '',
			ingredients TEXT NOT NULL DEFAULT '',
			allergens TEXT NOT NULL DEFAULT '',
			wine_title TEXT,
			wine_text TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT,
			phone TEXT NOT NULL,
			booking_date TEXT NOT NULL,
			booking_time TEXT NOT NULL,
			guests INTEGER NOT NULL,
			notes TEXT,
			cart_total_cents BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS booking_items (
			id BIGSERIAL PRIMARY KEY,
			booking_id BIGINT NOT NULL REFERENCES bookings(id),
			menu_item_id BIGINT NOT NULL,
			title TEXT NOT NULL,
			qty INTEGER NOT NULL,
			unit_price_cents BIGINT NOT NULL,
			line_total_cents BIGINT NOT NULL,
			image_path TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// ListCategories returns categories in insertion order. The first category
// is the menu's default section, so the seeded order must survive listing;
// relabeling keeps a category's position.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT slug, label FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Slug, &c.Label); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

const menuItemColumns = `id, category_slug, title, description, price_cents,
	image_path, ingredients, allergens, wine_title, wine_text`

func (s *PostgresStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id)
	item, err := scanMenuItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PostgresStore) UpsertCategory(ctx context.Context, cat models.Category) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO categories (slug, label) VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET label = $2`,
		cat.Slug, cat.Label,
	)
	return err
}

func (s *PostgresStore) InsertMenuItem(ctx context.Context, item *models.MenuItem) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO menu_items (category_slug, title, description, price_cents,
			image_path, ingredients, allergens, wine_title, wine_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		item.CategorySlug, item.Title, item.Description, item.PriceMinorUnits,
		item.ImagePath, strings.Join(item.Ingredients, ", "),
		strings.Join(item.Allergens, ", "), item.WineTitle, item.WineText,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	item.ID = id
	return id, nil
}

func (s *PostgresStore) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO bookings (full_name, email, phone, booking_date, booking_time,
			guests, notes, cart_total_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		b.FullName, b.Email, b.Phone, b.Date, b.Time, b.Guests, b.Notes, b.CartTotalMinor,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert booking: %w", err)
	}
	b.ID = id
	return id, nil
}

// AttachLineItems inserts all snapshot rows in a single transaction so the
// admin never sees a partially recorded order.
func (s *PostgresStore) AttachLineItems(ctx context.Context, bookingID int64, lines []models.BookingLineItem) error {
	if len(lines) == 0 {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, line := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO booking_items (booking_id, menu_item_id, title, qty,
				unit_price_cents, line_total_cents, image_path)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			bookingID, line.MenuItemID, line.Title, line.Quantity,
			line.UnitPriceMinorUnits, line.LineTotalMinorUnits, line.ImagePath,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

const bookingRowColumns = `id, full_name, email, phone, booking_date, booking_time,
	guests, notes, cart_total_cents, created_at`

func (s *PostgresStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bookingRowColumns+` FROM bookings ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (s *PostgresStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+bookingRowColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *PostgresStore) ListLineItems(ctx context.Context, bookingID int64) ([]models.BookingLineItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT booking_id, menu_item_id, title, qty, unit_price_cents,
			line_total_cents, image_path
		FROM booking_items WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.BookingLineItem
	for rows.Next() {
		var line models.BookingLineItem
		err := rows.Scan(&line.BookingID, &line.MenuItemID, &line.Title, &line.Quantity,
			&line.UnitPriceMinorUnits, &line.LineTotalMinorUnits, &line.ImagePath)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func scanMenuItem(row pgx.Row) (*models.MenuItem, error) {
	var (
		item        models.MenuItem
		ingredients string
		allergens   string
		wineTitle   *string
		wineText    *string
	)
	err := row.Scan(&item.ID, &item.CategorySlug, &item.Title, &item.Description,
		&item.PriceMinorUnits, &item.ImagePath, &ingredients, &allergens,
		&wineTitle, &wineText)
	if err != nil {
		return nil, err
	}

	item.Price = money.FormatMinor(item.PriceMinorUnits)
	item.Ingredients = splitCSV(ingredients)
	item.Allergens = splitCSV(allergens)
	if wineTitle != nil {
		item.WineTitle = *wineTitle
	}
	if wineText != nil {
		item.WineText = *wineText
	}
	return &item, nil
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var (
		b     models.Booking
		email *string
		notes *string
	)
	err := row.Scan(&b.ID, &b.FullName, &email, &b.Phone, &b.Date, &b.Time,
		&b.Guests, &notes, &b.CartTotalMinor, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if email != nil {
		b.Email = *email
	}
	if notes != nil {
		b.Notes = *notes
	}
	b.CartTotal = money.FormatMinor(b.CartTotalMinor)
	return &b, nil
}

func splitCSV(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
