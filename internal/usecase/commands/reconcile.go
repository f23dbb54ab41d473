package commands

import (
	"context"
	"log/slog"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/clock"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
)

// FeedSource selects where the iCal document comes from. With both fields
// empty the property's stored feed URL is used.
type FeedSource struct {
	URL string
	Raw []byte
}

func (s FeedSource) IsEmpty() bool {
	return s.URL == "" && len(s.Raw) == 0
}

// FeedEvent is one normalized calendar entry: calendar-day granular with an
// exclusive end date, matching the booking model.
type FeedEvent struct {
	Stay    stay.DateRange
	Summary string
}

type FeedParser interface {
	Parse(ctx context.Context, src FeedSource) ([]FeedEvent, error)
}

type ReconcileResult struct {
	Created int
	Total   int
}

type ReconcileCommands interface {
	Reconcile(ctx context.Context, propertyID uuid.UUID, src FeedSource) (*ReconcileResult, error)
}

type reconcileCommandsImpl struct {
	properties shared.PropertyRepository
	uow        shared.UnitOfWork
	parser     FeedParser
	clock      clock.Clock
}

func NewReconcileCommands(
	properties shared.PropertyRepository,
	uow shared.UnitOfWork,
	parser FeedParser,
	clock clock.Clock,
) ReconcileCommands {
	return &reconcileCommandsImpl{
		properties: properties,
		uow:        uow,
		parser:     parser,
		clock:      clock,
	}
}

// Reconcile imports external calendar events as confirmed bookings.
// First-writer-wins: a candidate overlapping an existing booking, or one
// already accepted earlier in the same run, is skipped, never merged. The
// fetch and parse happen outside the transaction; only the filtered batch
// insert holds the property lock.
func (c *reconcileCommandsImpl) Reconcile(
	ctx context.Context,
	propertyID uuid.UUID,
	src FeedSource,
) (*ReconcileResult, error) {
	prop, err := c.properties.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if src.IsEmpty() {
		if prop.FeedURL == nil || *prop.FeedURL == "" {
			return nil, errs.ErrFeedURLMissing
		}
		src.URL = *prop.FeedURL
	}

	events, err := c.parser.Parse(ctx, src)
	if err != nil {
		// "Last attempted" moves even on failure; existing bookings stay
		// untouched.
		if markErr := c.properties.MarkFeedAttempted(ctx, propertyID, c.clock.Now()); markErr != nil {
			slog.Warn("failed to record feed attempt", "property_id", propertyID, "error", markErr)
		}
		return nil, errs.Mark(err, errs.ErrFeedUnavailable)
	}

	result := &ReconcileResult{Total: len(events)}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Properties().Lock(ctx, propertyID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		existing, err := tx.Bookings().ListConfirmed(ctx, propertyID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		accepted := make([]*booking.Booking, 0, len(events))
		for _, ev := range events {
			if booking.FindConflict(existing, ev.Stay, uuid.Nil) != nil {
				continue
			}
			b, err := booking.NewBooking(propertyID, ev.Stay, truncateLabel(ev.Summary))
			if err != nil {
				return errs.Mark(err, errs.ErrValidation)
			}
			accepted = append(accepted, b)
			// Accepted candidates join the conflict set so overlapping
			// events within one feed cannot both land.
			existing = append(existing, b)
		}

		if len(accepted) > 0 {
			if err := tx.Bookings().CreateBatch(ctx, accepted); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		now := c.clock.Now()
		if err := tx.Properties().MarkFeedAttempted(ctx, propertyID, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Properties().MarkFeedSynced(ctx, propertyID, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result.Created = len(accepted)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("feed reconciled",
		"property_id", propertyID,
		"created", result.Created,
		"total", result.Total)
	return result, nil
}

func truncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) > booking.MaxGuestNameLength {
		return string(runes[:booking.MaxGuestNameLength])
	}
	return s
}
