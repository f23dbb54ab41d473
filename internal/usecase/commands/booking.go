package commands

import (
	"context"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Create(ctx context.Context, propertyID uuid.UUID, arrival, departure time.Time, guestName string) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

// Create validates the range and the property, then runs the conflict check
// and the insert inside one transaction with the property row locked. On
// conflict the returned error carries the blocking range and no state
// changes.
func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	propertyID uuid.UUID,
	arrival, departure time.Time,
	guestName string,
) (*booking.Booking, error) {
	r, err := stay.NewDateRange(arrival, departure)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().FindByID(ctx, propertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPropertyNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Properties().Lock(ctx, propertyID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		existing, err := tx.Bookings().ListConfirmed(ctx, propertyID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflict := booking.FindConflict(existing, r, uuid.Nil); conflict != nil {
			return &booking.ConflictError{Existing: conflict}
		}

		b, err := booking.NewBooking(propertyID, r, guestName)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete is not a silent no-op for unknown ids: callers can distinguish a
// removed booking from one that never existed.
func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
