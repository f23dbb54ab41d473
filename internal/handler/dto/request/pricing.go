package request

import (
	"time"

	"github.com/google/uuid"
)

type RatePeriodRequest struct {
	PropertyID   uuid.UUID `json:"property_id" binding:"required"`
	StartDate    string    `json:"start_date" binding:"required"`
	EndDate      string    `json:"end_date" binding:"required"`
	NightlyCents int64     `json:"nightly_cents"`
}

func (r RatePeriodRequest) Dates() (time.Time, time.Time, error) {
	return parseDatePair(r.StartDate, r.EndDate)
}

type OfferRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
	Percent    int       `json:"percent"`
	Note       string    `json:"note"`
}

func (r OfferRequest) Dates() (time.Time, time.Time, error) {
	return parseDatePair(r.StartDate, r.EndDate)
}

type FeeRequest struct {
	PropertyID  uuid.UUID `json:"property_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	AmountCents int64     `json:"amount_cents"`
	PerNight    bool      `json:"per_night"`
}
