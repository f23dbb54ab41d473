package response

import (
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	GuestName  string    `json:"guest_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		StartDate:  b.Stay().Start().Format(stay.ISODate),
		EndDate:    b.Stay().End().Format(stay.ISODate),
		GuestName:  b.GuestName(),
		Status:     string(b.Status()),
		CreatedAt:  b.CreatedAt(),
	}
}

type BookingListResponse struct {
	Bookings []queries.BookingView `json:"bookings"`
}

type ConflictDetail struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func FromConflict(r stay.DateRange) ConflictDetail {
	return ConflictDetail{
		StartDate: r.Start().Format(stay.ISODate),
		EndDate:   r.End().Format(stay.ISODate),
	}
}
