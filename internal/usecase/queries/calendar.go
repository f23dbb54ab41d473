package queries

import (
	"context"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"
)

// FeedEncoder serializes a property's bookings into an iCal document with
// exclusive DTEND, mirroring what the importer consumes.
type FeedEncoder interface {
	Encode(prop *shared.PropertySnapshot, bookings []*booking.Booking) ([]byte, error)
}

type CalendarQueries interface {
	ExportICS(ctx context.Context, slug string) ([]byte, error)
}

type calendarQueriesImpl struct {
	properties shared.PropertyRepository
	bookings   shared.BookingRepository
	encoder    FeedEncoder
}

func NewCalendarQueries(
	properties shared.PropertyRepository,
	bookings shared.BookingRepository,
	encoder FeedEncoder,
) CalendarQueries {
	return &calendarQueriesImpl{
		properties: properties,
		bookings:   bookings,
		encoder:    encoder,
	}
}

func (q *calendarQueriesImpl) ExportICS(ctx context.Context, slug string) ([]byte, error) {
	prop, err := q.properties.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	bs, err := q.bookings.ListConfirmed(ctx, prop.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	data, err := q.encoder.Encode(prop, bs)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode calendar")
	}
	return data, nil
}
