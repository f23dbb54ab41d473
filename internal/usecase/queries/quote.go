package queries

import (
	"context"
	"time"

	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/clock"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteQueries interface {
	Quote(ctx context.Context, propertyID uuid.UUID, arrival, departure time.Time) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	properties shared.PropertyRepository
	rates      shared.RatePeriodRepository
	offers     shared.OfferRepository
	fees       shared.FeeRepository
	clock      clock.Clock
}

func NewQuoteQueries(
	properties shared.PropertyRepository,
	rates shared.RatePeriodRepository,
	offers shared.OfferRepository,
	fees shared.FeeRepository,
	clock clock.Clock,
) QuoteQueries {
	return &quoteQueriesImpl{
		properties: properties,
		rates:      rates,
		offers:     offers,
		fees:       fees,
		clock:      clock,
	}
}

// Quote is a pure, stale-tolerant read: fee and offer configuration is
// re-read on every call, no snapshotting, no locks.
func (q *quoteQueriesImpl) Quote(
	ctx context.Context,
	propertyID uuid.UUID,
	arrival, departure time.Time,
) (*QuoteView, error) {
	r, err := stay.NewDateRange(arrival, departure)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rates, err := q.rates.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	offers, err := q.offers.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	fees, err := q.fees.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	quote := pricing.BuildQuote(q.clock.Now(), r, rates, offers, fees)
	view := toQuoteView(propertyID, quote)
	return &view, nil
}

func toQuoteView(propertyID uuid.UUID, quote *pricing.Quote) QuoteView {
	breakdown := make([]NightPriceView, len(quote.Nights))
	for i, n := range quote.Nights {
		breakdown[i] = NightPriceView{
			Date:            n.Date.Format(stay.ISODate),
			BaseCents:       n.BaseCents,
			DiscountPercent: n.DiscountPercent,
			PriceCents:      n.PriceCents,
		}
	}

	lines := make([]InvoiceLineView, len(quote.Lines))
	for i, l := range quote.Lines {
		lv := InvoiceLineView{
			Kind:           string(l.Kind),
			Title:          l.Title,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
			UnitPriceCents: l.UnitPriceCents,
			AmountCents:    l.AmountCents,
		}
		for _, g := range l.Groups {
			lv.Groups = append(lv.Groups, DiscountGroupView{
				Percent:     g.Percent,
				Nights:      g.Nights,
				AmountCents: g.AmountCents,
			})
		}
		lines[i] = lv
	}

	return QuoteView{
		PropertyID:     propertyID,
		StartDate:      quote.Stay.Start().Format(stay.ISODate),
		EndDate:        quote.Stay.End().Format(stay.ISODate),
		NightCount:     quote.Stay.NightCount(),
		Breakdown:      breakdown,
		BaseTotalCents: quote.BaseTotalCents,
		SubtotalCents:  quote.SubtotalCents,
		SavingsCents:   quote.SavingsCents,
		FeesTotalCents: quote.FeesTotalCents,
		TotalCents:     quote.TotalCents,
		Lines:          lines,
	}
}
