package commands

import (
	"context"
	"time"

	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingCommands interface {
	CreateRatePeriod(ctx context.Context, propertyID uuid.UUID, start, end time.Time, nightlyCents int64) (*pricing.RatePeriod, error)
	UpdateRatePeriod(ctx context.Context, id uuid.UUID, start, end time.Time, nightlyCents int64) (*pricing.RatePeriod, error)
	DeleteRatePeriod(ctx context.Context, id uuid.UUID) error

	CreateOffer(ctx context.Context, propertyID uuid.UUID, start, end time.Time, percent int, note string) (*pricing.Offer, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, start, end time.Time, percent int, note string) (*pricing.Offer, error)
	DeleteOffer(ctx context.Context, id uuid.UUID) error

	CreateFee(ctx context.Context, propertyID uuid.UUID, title string, amountCents int64, perNight bool) (*pricing.Fee, error)
	DeleteFee(ctx context.Context, id uuid.UUID) error
}

type pricingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPricingCommands(uow shared.UnitOfWork) PricingCommands {
	return &pricingCommandsImpl{uow: uow}
}

// Rate periods carry the same no-overlap invariant as bookings, so writes go
// through the overlap check with the property row locked. Offers may overlap
// each other and skip the check.

func (c *pricingCommandsImpl) CreateRatePeriod(
	ctx context.Context,
	propertyID uuid.UUID,
	start, end time.Time,
	nightlyCents int64,
) (*pricing.RatePeriod, error) {
	r, err := stay.NewDateRange(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	var created pricing.RatePeriod
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

		if err := c.checkRateOverlap(ctx, tx, propertyID, r, uuid.Nil); err != nil {
			return err
		}

		rp, err := pricing.NewRatePeriod(propertyID, r, nightlyCents)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.RatePeriods().Create(ctx, rp); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = rp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *pricingCommandsImpl) UpdateRatePeriod(
	ctx context.Context,
	id uuid.UUID,
	start, end time.Time,
	nightlyCents int64,
) (*pricing.RatePeriod, error) {
	r, err := stay.NewDateRange(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}
	if nightlyCents < 0 {
		return nil, errs.Mark(pricing.ErrNegativeRate, errs.ErrValidation)
	}

	var updated pricing.RatePeriod
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.RatePeriods().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRatePeriodNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Properties().Lock(ctx, current.PropertyID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.checkRateOverlap(ctx, tx, current.PropertyID, r, id); err != nil {
			return err
		}

		updated = pricing.RatePeriod{
			ID:           current.ID,
			PropertyID:   current.PropertyID,
			Stay:         r,
			NightlyCents: nightlyCents,
		}
		if err := tx.RatePeriods().Update(ctx, updated); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *pricingCommandsImpl) DeleteRatePeriod(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RatePeriods().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRatePeriodNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *pricingCommandsImpl) checkRateOverlap(
	ctx context.Context,
	tx shared.Tx,
	propertyID uuid.UUID,
	r stay.DateRange,
	excludeID uuid.UUID,
) error {
	existing, err := tx.RatePeriods().ListByProperty(ctx, propertyID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, rp := range existing {
		if excludeID != uuid.Nil && rp.ID == excludeID {
			continue
		}
		if rp.Stay.Overlaps(r) {
			return errs.Mark(errs.New("overlaps "+rp.Stay.String()), errs.ErrRatePeriodConflict)
		}
	}
	return nil
}

func (c *pricingCommandsImpl) CreateOffer(
	ctx context.Context,
	propertyID uuid.UUID,
	start, end time.Time,
	percent int,
	note string,
) (*pricing.Offer, error) {
	r, err := stay.NewDateRange(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	var created pricing.Offer
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().FindByID(ctx, propertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPropertyNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		o, err := pricing.NewOffer(propertyID, r, percent, note)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Offers().Create(ctx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *pricingCommandsImpl) UpdateOffer(
	ctx context.Context,
	id uuid.UUID,
	start, end time.Time,
	percent int,
	note string,
) (*pricing.Offer, error) {
	r, err := stay.NewDateRange(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}
	if percent < 0 || percent > 100 {
		return nil, errs.Mark(pricing.ErrInvalidPercent, errs.ErrValidation)
	}

	var updated pricing.Offer
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Offers().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOfferNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		updated = pricing.Offer{
			ID:         current.ID,
			PropertyID: current.PropertyID,
			Stay:       r,
			Percent:    percent,
			Note:       note,
		}
		if err := tx.Offers().Update(ctx, updated); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *pricingCommandsImpl) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Offers().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOfferNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *pricingCommandsImpl) CreateFee(
	ctx context.Context,
	propertyID uuid.UUID,
	title string,
	amountCents int64,
	perNight bool,
) (*pricing.Fee, error) {
	var created pricing.Fee
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().FindByID(ctx, propertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPropertyNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		f, err := pricing.NewFee(propertyID, title, amountCents, perNight)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Fees().Create(ctx, f); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *pricingCommandsImpl) DeleteFee(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Fees().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrFeeNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
