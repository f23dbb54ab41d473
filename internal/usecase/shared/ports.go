package shared

import (
	"context"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/pricing"

	"github.com/google/uuid"
)

// PropertySnapshot is the write-side view of a property. Property metadata
// CRUD lives outside this service; the engine only reads it.
type PropertySnapshot struct {
	ID              uuid.UUID
	Slug            string
	Title           string
	Location        string
	MaxGuests       int
	DogsAllowed     bool
	FeedURL         *string
	FeedAttemptedAt *time.Time
	FeedSyncedAt    *time.Time
}

type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	FindBySlug(ctx context.Context, slug string) (*PropertySnapshot, error)
	// Lock takes a row lock on the property, serializing writers that target
	// the same property for the rest of the transaction.
	Lock(ctx context.Context, id uuid.UUID) error
	MarkFeedAttempted(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFeedSynced(ctx context.Context, id uuid.UUID, at time.Time) error
}

type BookingRepository interface {
	// ListConfirmed returns confirmed bookings ascending by start date.
	ListConfirmed(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	CreateBatch(ctx context.Context, bs []*booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RatePeriodRepository interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]pricing.RatePeriod, error)
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.RatePeriod, error)
	Create(ctx context.Context, rp pricing.RatePeriod) error
	Update(ctx context.Context, rp pricing.RatePeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OfferRepository interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]pricing.Offer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.Offer, error)
	Create(ctx context.Context, o pricing.Offer) error
	Update(ctx context.Context, o pricing.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FeeRepository interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]pricing.Fee, error)
	Create(ctx context.Context, f pricing.Fee) error
	Delete(ctx context.Context, id uuid.UUID) error
}
