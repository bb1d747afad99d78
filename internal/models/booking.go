package models

import "time"

// Booking is one table reservation, immutable once created. Date and time
// are stored as the free-form strings the guest submitted.
type Booking struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Guests         int       `json:"guests"`
	Notes          string    `json:"notes,omitempty"`
	CartTotalMinor int64     `json:"cart_total_cents"`
	CartTotal      string    `json:"cart_total"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookingLineItem is a by-value snapshot of one cart line at submission
// time. MenuItemID is a reference only, not a live foreign key; the source
// item may later change or disappear without affecting this record.
type BookingLineItem struct {
	BookingID           int64  `json:"booking_id,omitempty"`
	MenuItemID          int64  `json:"menu_item_id"`
	Title               string `json:"title"`
	Quantity            int    `json:"qty"`
	UnitPriceMinorUnits int64  `json:"unit_price_cents"`
	LineTotalMinorUnits int64  `json:"line_total_cents"`
	ImagePath           string `json:"image_path"`
}

// BookingRequest is the submission payload for the booking form.
type BookingRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Date     string `json:"date" form:"date"`
	Time     string `json:"time" form:"time"`
	Guests   string `json:"guests" form:"guests"`
	Notes    string `json:"notes" form:"notes"`
}

// BookingEvent is published to Kafka when a booking is created.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	Booking   *Booking  `json:"booking"`
	Timestamp time.Time `json:"timestamp"`
}
