package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

type receiptRepository struct {
	db *sql.DB
}

// NewReceiptRepository creates a new Postgres-backed receipt repository.
func NewReceiptRepository(db *sql.DB) domain.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create stores a new receipt snapshot. The guest list is kept as a JSON
// document; it is read back whole and never queried field by field.
func (r *receiptRepository) Create(receipt *domain.ReceiptSnapshot) error {
	guests, err := json.Marshal(receipt.Guests)
	if err != nil {
		return fmt.Errorf("failed to encode guest list: %w", err)
	}

	query := `
		INSERT INTO receipt (id, booking_id, customer_name, email, phone, hotel_id, room_id,
			check_in_date, check_out_date, duration_nights, nightly_rate,
			total_amount, paid_amount, payment_method, guests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = r.db.Exec(query,
		receipt.ID,
		receipt.BookingID,
		receipt.CustomerName,
		receipt.Email,
		receipt.Phone,
		receipt.HotelID,
		receipt.RoomID,
		receipt.CheckInDate,
		receipt.CheckOutDate,
		receipt.DurationNights,
		receipt.NightlyRate,
		receipt.TotalAmount,
		receipt.PaidAmount,
		string(receipt.PaymentMethod),
		guests,
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store receipt: %w", err)
	}

	return nil
}

// GetByID fetches a receipt by its id.
func (r *receiptRepository) GetByID(id string) (*domain.ReceiptSnapshot, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByBookingID fetches the receipt captured for a booking.
func (r *receiptRepository) GetByBookingID(bookingID string) (*domain.ReceiptSnapshot, error) {
	return r.getOne(`WHERE booking_id = $1`, bookingID)
}

func (r *receiptRepository) getOne(where string, arg interface{}) (*domain.ReceiptSnapshot, error) {
	query := `
		SELECT id, booking_id, customer_name, email, phone, hotel_id, room_id,
			check_in_date, check_out_date, duration_nights, nightly_rate,
			total_amount, paid_amount, payment_method, guests, created_at
		FROM receipt
	` + where

	var (
		receipt domain.ReceiptSnapshot
		method  string
		guests  []byte
	)

	err := r.db.QueryRow(query, arg).Scan(
		&receipt.ID,
		&receipt.BookingID,
		&receipt.CustomerName,
		&receipt.Email,
		&receipt.Phone,
		&receipt.HotelID,
		&receipt.RoomID,
		&receipt.CheckInDate,
		&receipt.CheckOutDate,
		&receipt.DurationNights,
		&receipt.NightlyRate,
		&receipt.TotalAmount,
		&receipt.PaidAmount,
		&method,
		&guests,
		&receipt.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("receipt not found: %w", sql.ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}

	receipt.PaymentMethod = domain.PaymentMethod(method)
	if err := json.Unmarshal(guests, &receipt.Guests); err != nil {
		return nil, fmt.Errorf("failed to decode guest list: %w", err)
	}

	return &receipt, nil
}

// DeleteOlderThan removes receipts created strictly before the cutoff and
// returns how many were purged.
func (r *receiptRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query := `DELETE FROM receipt WHERE created_at < $1`

	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge receipts: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged receipts: %w", err)
	}

	return rowsAffected, nil
}
