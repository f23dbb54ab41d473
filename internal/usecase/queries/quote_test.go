//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/pkg/clock"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/queries"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := stay.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) stay.DateRange {
	t.Helper()
	r, err := stay.NewDateRange(date(start), date(end))
	require.NoError(t, err)
	return r
}

type stubProperties struct {
	known map[uuid.UUID]*shared.PropertySnapshot
}

func (s stubProperties) FindByID(_ context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	if prop, ok := s.known[id]; ok {
		return prop, nil
	}
	return nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
}

func (s stubProperties) FindBySlug(_ context.Context, slug string) (*shared.PropertySnapshot, error) {
	for _, prop := range s.known {
		if prop.Slug == slug {
			return prop, nil
		}
	}
	return nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
}

func (s stubProperties) Lock(context.Context, uuid.UUID) error { return nil }
func (s stubProperties) MarkFeedAttempted(context.Context, uuid.UUID, time.Time) error {
	return nil
}
func (s stubProperties) MarkFeedSynced(context.Context, uuid.UUID, time.Time) error {
	return nil
}

type stubRates struct{ rates []pricing.RatePeriod }

func (s stubRates) ListByProperty(context.Context, uuid.UUID) ([]pricing.RatePeriod, error) {
	return s.rates, nil
}
func (s stubRates) FindByID(context.Context, uuid.UUID) (*pricing.RatePeriod, error) {
	return nil, infra.WrapRepoErr("rate period not found", nil, infra.KindNotFound)
}
func (s stubRates) Create(context.Context, pricing.RatePeriod) error { return nil }
func (s stubRates) Update(context.Context, pricing.RatePeriod) error { return nil }
func (s stubRates) Delete(context.Context, uuid.UUID) error          { return nil }

type stubOffers struct{ offers []pricing.Offer }

func (s stubOffers) ListByProperty(context.Context, uuid.UUID) ([]pricing.Offer, error) {
	return s.offers, nil
}
func (s stubOffers) FindByID(context.Context, uuid.UUID) (*pricing.Offer, error) {
	return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
}
func (s stubOffers) Create(context.Context, pricing.Offer) error { return nil }
func (s stubOffers) Update(context.Context, pricing.Offer) error { return nil }
func (s stubOffers) Delete(context.Context, uuid.UUID) error     { return nil }

type stubFees struct{ fees []pricing.Fee }

func (s stubFees) ListByProperty(context.Context, uuid.UUID) ([]pricing.Fee, error) {
	return s.fees, nil
}
func (s stubFees) Create(context.Context, pricing.Fee) error { return nil }
func (s stubFees) Delete(context.Context, uuid.UUID) error   { return nil }

func TestQuoteQuery(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	props := stubProperties{known: map[uuid.UUID]*shared.PropertySnapshot{
		propertyID: {ID: propertyID, Slug: "seehaus", Title: "Seehaus"},
	}}
	fixedClock := clock.NewMockClock(date("2025-09-01"))

	rate, err := pricing.NewRatePeriod(propertyID, mustRange(t, "2025-10-01", "2025-11-01"), 12000)
	require.NoError(t, err)
	offer, err := pricing.NewOffer(propertyID, mustRange(t, "2025-10-01", "2025-10-03"), 20, "")
	require.NoError(t, err)
	cleaning, err := pricing.NewFee(propertyID, "Cleaning", 4900, false)
	require.NoError(t, err)
	dog, err := pricing.NewFee(propertyID, "Dog", 500, true)
	require.NoError(t, err)

	t.Run("full invoice view", func(t *testing.T) {
		q := queries.NewQuoteQueries(props,
			stubRates{[]pricing.RatePeriod{rate}},
			stubOffers{[]pricing.Offer{offer}},
			stubFees{[]pricing.Fee{cleaning, dog}},
			fixedClock)

		view, err := q.Quote(ctx, propertyID, date("2025-10-01"), date("2025-10-04"))
		require.NoError(t, err)

		assert.Equal(t, propertyID, view.PropertyID)
		assert.Equal(t, "2025-10-01", view.StartDate)
		assert.Equal(t, "2025-10-04", view.EndDate)
		assert.Equal(t, 3, view.NightCount)
		require.Len(t, view.Breakdown, 3)
		assert.Equal(t, int64(9600), view.Breakdown[0].PriceCents)
		assert.Equal(t, int64(12000), view.Breakdown[2].PriceCents)
		assert.Equal(t, int64(31200), view.SubtotalCents)
		assert.Equal(t, int64(4800), view.SavingsCents)
		assert.Equal(t, int64(6400), view.FeesTotalCents)
		assert.Equal(t, int64(37600), view.TotalCents)

		var sum int64
		for _, l := range view.Lines {
			sum += l.AmountCents
		}
		assert.Equal(t, view.TotalCents, sum)
	})

	t.Run("invalid range", func(t *testing.T) {
		q := queries.NewQuoteQueries(props, stubRates{}, stubOffers{}, stubFees{}, fixedClock)
		_, err := q.Quote(ctx, propertyID, date("2025-10-04"), date("2025-10-01"))
		assert.ErrorIs(t, err, errs.ErrInvalidRange)
	})

	t.Run("unknown property", func(t *testing.T) {
		q := queries.NewQuoteQueries(props, stubRates{}, stubOffers{}, stubFees{}, fixedClock)
		_, err := q.Quote(ctx, uuid.New(), date("2025-10-01"), date("2025-10-04"))
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})
}

type stubBookings struct{ bookings []*booking.Booking }

func (s stubBookings) ListConfirmed(context.Context, uuid.UUID) ([]*booking.Booking, error) {
	return s.bookings, nil
}
func (s stubBookings) Create(context.Context, *booking.Booking) error      { return nil }
func (s stubBookings) CreateBatch(context.Context, []*booking.Booking) error { return nil }
func (s stubBookings) Delete(context.Context, uuid.UUID) error             { return nil }

func TestBookingListQuery(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	props := stubProperties{known: map[uuid.UUID]*shared.PropertySnapshot{
		propertyID: {ID: propertyID, Slug: "seehaus", Title: "Seehaus"},
	}}

	b, err := booking.NewBooking(propertyID, mustRange(t, "2025-10-01", "2025-10-04"), "Alice")
	require.NoError(t, err)

	t.Run("views carry formatted dates", func(t *testing.T) {
		q := queries.NewBookingQueries(props, stubBookings{[]*booking.Booking{b}})
		views, err := q.ListByProperty(ctx, propertyID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "2025-10-01", views[0].StartDate)
		assert.Equal(t, "2025-10-04", views[0].EndDate)
		assert.Equal(t, "confirmed", views[0].Status)
	})

	t.Run("unknown property", func(t *testing.T) {
		q := queries.NewBookingQueries(props, stubBookings{})
		_, err := q.ListByProperty(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})
}
