package repository

import (
	"context"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListConfirmed(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	query := `
		SELECT id, property_id, start_date, end_date, guest_name, status, created_at, updated_at
		FROM bookings
		WHERE property_id = $1 AND status = $2
		ORDER BY start_date ASC`

	rows, err := r.db.Query(ctx, query, propertyID, booking.StatusConfirmed.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, property_id, start_date, end_date, guest_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.PropertyID(), b.Stay().Start(), b.Stay().End(), b.GuestName(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// CreateBatch bulk-inserts reconciled bookings in one round trip, keeping the
// property lock short.
func (r *BookingRepository) CreateBatch(ctx context.Context, bs []*booking.Booking) error {
	if len(bs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO bookings (id, property_id, start_date, end_date, guest_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, b := range bs {
		batch.Queue(query,
			b.ID(), b.PropertyID(), b.Stay().Start(), b.Stay().End(), b.GuestName(), b.Status().String())
	}

	results := r.sendBatch(ctx, batch)
	defer results.Close()
	for range bs {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to batch-create bookings", err)
		}
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func (r *BookingRepository) sendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	// Both pgxpool.Pool and pgx.Tx implement SendBatch.
	return r.db.(batchSender).SendBatch(ctx, b)
}

func scanBooking(rows pgx.Rows) (*booking.Booking, error) {
	var (
		id, propertyID     uuid.UUID
		startDate, endDate time.Time
		guestName, status  string
		createdAt          time.Time
		updatedAt          time.Time
	)
	if err := rows.Scan(&id, &propertyID, &startDate, &endDate, &guestName, &status, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	r, err := stay.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid range", err)
	}

	return booking.ReconstructBooking(
		id, propertyID, r, guestName, booking.Status(status), createdAt, updatedAt,
	), nil
}
