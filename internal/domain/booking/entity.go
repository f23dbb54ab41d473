package booking

import (
	"errors"
	"strings"
	"time"

	"ferienwerk/internal/domain/stay"

	"github.com/google/uuid"
)

var ErrGuestNameTooLong = errors.New("guest name is too long")

const (
	MaxGuestNameLength = 120

	// Label used when a booking is created without a guest name, e.g. an
	// admin blocking out dates.
	DefaultGuestName = "(admin)"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusTentative Status = "tentative"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusTentative:
		return true
	default:
		return false
	}
}

// Booking reserves a property for a half-open date range. Confirmed bookings
// for one property are pairwise non-overlapping; the range is never mutated
// in place (changes are modeled as delete + recreate).
type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	stay       stay.DateRange
	guestName  string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(propertyID uuid.UUID, r stay.DateRange, guestName string) (*Booking, error) {
	guestName = strings.TrimSpace(guestName)
	if len([]rune(guestName)) > MaxGuestNameLength {
		return nil, ErrGuestNameTooLong
	}
	if guestName == "" {
		guestName = DefaultGuestName
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: propertyID,
		stay:       r,
		guestName:  guestName,
		status:     StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, propertyID uuid.UUID,
	r stay.DateRange,
	guestName string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		stay:       r,
		guestName:  guestName,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) Stay() stay.DateRange  { return b.stay }
func (b *Booking) GuestName() string     { return b.guestName }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
