package queries

import (
	"context"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	properties shared.PropertyRepository
	bookings   shared.BookingRepository
}

func NewBookingQueries(properties shared.PropertyRepository, bookings shared.BookingRepository) BookingQueries {
	return &bookingQueriesImpl{properties: properties, bookings: bookings}
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]BookingView, error) {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	bs, err := q.bookings.ListConfirmed(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]BookingView, len(bs))
	for i, b := range bs {
		views[i] = toBookingView(b)
	}
	return views, nil
}

func toBookingView(b *booking.Booking) BookingView {
	return BookingView{
		ID:        b.ID(),
		StartDate: b.Stay().Start().Format(stay.ISODate),
		EndDate:   b.Stay().End().Format(stay.ISODate),
		GuestName: b.GuestName(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
	}
}
