package request

import (
	"time"

	"ferienwerk/internal/domain/stay"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
}

func (r QuoteRequest) Dates() (time.Time, time.Time, error) {
	return parseDatePair(r.StartDate, r.EndDate)
}

func parseDatePair(start, end string) (time.Time, time.Time, error) {
	s, err := stay.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := stay.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
