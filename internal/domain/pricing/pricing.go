// Package pricing computes deterministic, auditable per-night price breakdowns
// from seasonal rate periods, last-minute discount offers and fixed or
// per-night fees. All monetary amounts are integer cents.
package pricing

import (
	"errors"
	"strings"

	"ferienwerk/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrNegativeRate     = errors.New("nightly rate cannot be negative")
	ErrInvalidPercent   = errors.New("discount percent must be between 0 and 100")
	ErrEmptyFeeTitle    = errors.New("fee title cannot be empty")
	ErrNegativeFeeAmount = errors.New("fee amount cannot be negative")
)

// RatePeriod prices each night inside its half-open range. Periods for one
// property never overlap; the write side enforces that with the same overlap
// predicate used for bookings.
type RatePeriod struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	Stay         stay.DateRange
	NightlyCents int64
}

func NewRatePeriod(propertyID uuid.UUID, r stay.DateRange, nightlyCents int64) (RatePeriod, error) {
	if nightlyCents < 0 {
		return RatePeriod{}, ErrNegativeRate
	}
	return RatePeriod{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		Stay:         r,
		NightlyCents: nightlyCents,
	}, nil
}

// Offer is a temporary percentage markdown. Offers for one property may
// overlap each other; when several cover the same night the engine picks the
// highest percent.
type Offer struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Stay       stay.DateRange
	Percent    int
	Note       string
}

func NewOffer(propertyID uuid.UUID, r stay.DateRange, percent int, note string) (Offer, error) {
	if percent < 0 || percent > 100 {
		return Offer{}, ErrInvalidPercent
	}
	return Offer{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Stay:       r,
		Percent:    percent,
		Note:       strings.TrimSpace(note),
	}, nil
}

// Fee is a surcharge attached to a property, charged once per stay or once
// per night.
type Fee struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	Title       string
	AmountCents int64
	PerNight    bool
}

func NewFee(propertyID uuid.UUID, title string, amountCents int64, perNight bool) (Fee, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Fee{}, ErrEmptyFeeTitle
	}
	if amountCents < 0 {
		return Fee{}, ErrNegativeFeeAmount
	}
	return Fee{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Title:       title,
		AmountCents: amountCents,
		PerNight:    perNight,
	}, nil
}
