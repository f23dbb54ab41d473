package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
	GuestName  string    `json:"guest_name"`
}

func (r CreateBookingRequest) Dates() (time.Time, time.Time, error) {
	return parseDatePair(r.StartDate, r.EndDate)
}

func (r CreateBookingRequest) TrimmedGuestName() string {
	return strings.TrimSpace(r.GuestName)
}
