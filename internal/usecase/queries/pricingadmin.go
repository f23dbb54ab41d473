package queries

import (
	"context"

	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
)

// PricingQueries lists the rate, offer and fee configuration for the admin
// screens.
type PricingQueries interface {
	ListRatePeriods(ctx context.Context, propertyID uuid.UUID) ([]RatePeriodView, error)
	ListOffers(ctx context.Context, propertyID uuid.UUID) ([]OfferView, error)
	ListFees(ctx context.Context, propertyID uuid.UUID) ([]FeeView, error)
}

type pricingQueriesImpl struct {
	properties shared.PropertyRepository
	rates      shared.RatePeriodRepository
	offers     shared.OfferRepository
	fees       shared.FeeRepository
}

func NewPricingQueries(
	properties shared.PropertyRepository,
	rates shared.RatePeriodRepository,
	offers shared.OfferRepository,
	fees shared.FeeRepository,
) PricingQueries {
	return &pricingQueriesImpl{
		properties: properties,
		rates:      rates,
		offers:     offers,
		fees:       fees,
	}
}

func (q *pricingQueriesImpl) ListRatePeriods(ctx context.Context, propertyID uuid.UUID) ([]RatePeriodView, error) {
	if err := q.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}
	rps, err := q.rates.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]RatePeriodView, len(rps))
	for i, rp := range rps {
		views[i] = toRatePeriodView(rp)
	}
	return views, nil
}

func (q *pricingQueriesImpl) ListOffers(ctx context.Context, propertyID uuid.UUID) ([]OfferView, error) {
	if err := q.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}
	os, err := q.offers.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]OfferView, len(os))
	for i, o := range os {
		views[i] = toOfferView(o)
	}
	return views, nil
}

func (q *pricingQueriesImpl) ListFees(ctx context.Context, propertyID uuid.UUID) ([]FeeView, error) {
	if err := q.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}
	fs, err := q.fees.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]FeeView, len(fs))
	for i, f := range fs {
		views[i] = toFeeView(f)
	}
	return views, nil
}

func (q *pricingQueriesImpl) ensureProperty(ctx context.Context, propertyID uuid.UUID) error {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPropertyNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func toRatePeriodView(rp pricing.RatePeriod) RatePeriodView {
	return RatePeriodView{
		ID:           rp.ID,
		PropertyID:   rp.PropertyID,
		StartDate:    rp.Stay.Start().Format(stay.ISODate),
		EndDate:      rp.Stay.End().Format(stay.ISODate),
		NightlyCents: rp.NightlyCents,
	}
}

func toOfferView(o pricing.Offer) OfferView {
	return OfferView{
		ID:         o.ID,
		PropertyID: o.PropertyID,
		StartDate:  o.Stay.Start().Format(stay.ISODate),
		EndDate:    o.Stay.End().Format(stay.ISODate),
		Percent:    o.Percent,
		Note:       o.Note,
	}
}

func toFeeView(f pricing.Fee) FeeView {
	return FeeView{
		ID:          f.ID,
		PropertyID:  f.PropertyID,
		Title:       f.Title,
		AmountCents: f.AmountCents,
		PerNight:    f.PerNight,
	}
}
