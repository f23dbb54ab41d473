//go:build unit

package commands_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/pricing"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/infra"
	"ferienwerk/internal/usecase/shared"

	"github.com/google/uuid"
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

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// implements every write-side port over plain slices and maps.
type fakeStore struct {
	properties  map[uuid.UUID]*shared.PropertySnapshot
	bookings    []*booking.Booking
	ratePeriods []pricing.RatePeriod
	offers      []pricing.Offer
	fees        []pricing.Fee
	lockCount   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{properties: make(map[uuid.UUID]*shared.PropertySnapshot)}
}

func (s *fakeStore) addProperty(feedURL string) uuid.UUID {
	id := uuid.New()
	prop := &shared.PropertySnapshot{ID: id, Slug: "prop-" + id.String()[:8], Title: "Test Property"}
	if feedURL != "" {
		prop.FeedURL = &feedURL
	}
	s.properties[id] = prop
	return id
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (s *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	prop, ok := s.properties[id]
	if !ok {
		return nil, notFound("property not found")
	}
	cp := *prop
	return &cp, nil
}

func (s *fakeStore) FindBySlug(_ context.Context, slug string) (*shared.PropertySnapshot, error) {
	for _, prop := range s.properties {
		if prop.Slug == slug {
			cp := *prop
			return &cp, nil
		}
	}
	return nil, notFound("property not found")
}

func (s *fakeStore) Lock(_ context.Context, id uuid.UUID) error {
	if _, ok := s.properties[id]; !ok {
		return notFound("property not found")
	}
	s.lockCount++
	return nil
}

func (s *fakeStore) MarkFeedAttempted(_ context.Context, id uuid.UUID, at time.Time) error {
	prop, ok := s.properties[id]
	if !ok {
		return notFound("property not found")
	}
	prop.FeedAttemptedAt = &at
	return nil
}

func (s *fakeStore) MarkFeedSynced(_ context.Context, id uuid.UUID, at time.Time) error {
	prop, ok := s.properties[id]
	if !ok {
		return notFound("property not found")
	}
	prop.FeedSyncedAt = &at
	return nil
}

func (s *fakeStore) ListConfirmed(_ context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.PropertyID() == propertyID && b.IsConfirmed() {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Stay().Start().Before(out[j].Stay().Start())
	})
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, b *booking.Booking) error {
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *fakeStore) CreateBatch(_ context.Context, bs []*booking.Booking) error {
	s.bookings = append(s.bookings, bs...)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, b := range s.bookings {
		if b.ID() == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return notFound("booking not found")
}

type fakeRatePeriods struct{ s *fakeStore }

func (r fakeRatePeriods) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]pricing.RatePeriod, error) {
	var out []pricing.RatePeriod
	for _, rp := range r.s.ratePeriods {
		if rp.PropertyID == propertyID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (r fakeRatePeriods) FindByID(_ context.Context, id uuid.UUID) (*pricing.RatePeriod, error) {
	for _, rp := range r.s.ratePeriods {
		if rp.ID == id {
			cp := rp
			return &cp, nil
		}
	}
	return nil, notFound("rate period not found")
}

func (r fakeRatePeriods) Create(_ context.Context, rp pricing.RatePeriod) error {
	r.s.ratePeriods = append(r.s.ratePeriods, rp)
	return nil
}

func (r fakeRatePeriods) Update(_ context.Context, rp pricing.RatePeriod) error {
	for i := range r.s.ratePeriods {
		if r.s.ratePeriods[i].ID == rp.ID {
			r.s.ratePeriods[i] = rp
			return nil
		}
	}
	return notFound("rate period not found")
}

func (r fakeRatePeriods) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.s.ratePeriods {
		if r.s.ratePeriods[i].ID == id {
			r.s.ratePeriods = append(r.s.ratePeriods[:i], r.s.ratePeriods[i+1:]...)
			return nil
		}
	}
	return notFound("rate period not found")
}

type fakeOffers struct{ s *fakeStore }

func (r fakeOffers) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]pricing.Offer, error) {
	var out []pricing.Offer
	for _, o := range r.s.offers {
		if o.PropertyID == propertyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r fakeOffers) FindByID(_ context.Context, id uuid.UUID) (*pricing.Offer, error) {
	for _, o := range r.s.offers {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, notFound("offer not found")
}

func (r fakeOffers) Create(_ context.Context, o pricing.Offer) error {
	r.s.offers = append(r.s.offers, o)
	return nil
}

func (r fakeOffers) Update(_ context.Context, o pricing.Offer) error {
	for i := range r.s.offers {
		if r.s.offers[i].ID == o.ID {
			r.s.offers[i] = o
			return nil
		}
	}
	return notFound("offer not found")
}

func (r fakeOffers) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.s.offers {
		if r.s.offers[i].ID == id {
			r.s.offers = append(r.s.offers[:i], r.s.offers[i+1:]...)
			return nil
		}
	}
	return notFound("offer not found")
}

type fakeFees struct{ s *fakeStore }

func (r fakeFees) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]pricing.Fee, error) {
	var out []pricing.Fee
	for _, f := range r.s.fees {
		if f.PropertyID == propertyID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r fakeFees) Create(_ context.Context, f pricing.Fee) error {
	r.s.fees = append(r.s.fees, f)
	return nil
}

func (r fakeFees) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.s.fees {
		if r.s.fees[i].ID == id {
			r.s.fees = append(r.s.fees[:i], r.s.fees[i+1:]...)
			return nil
		}
	}
	return notFound("fee not found")
}

type fakeTx struct{ s *fakeStore }

func (t fakeTx) Properties() shared.PropertyRepository   { return t.s }
func (t fakeTx) Bookings() shared.BookingRepository      { return t.s }
func (t fakeTx) RatePeriods() shared.RatePeriodRepository { return fakeRatePeriods{t.s} }
func (t fakeTx) Offers() shared.OfferRepository          { return fakeOffers{t.s} }
func (t fakeTx) Fees() shared.FeeRepository              { return fakeFees{t.s} }

// fakeUoW rolls its store back when fn fails so tests can assert that a
// rejected write leaves no trace.
type fakeUoW struct{ s *fakeStore }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	bookings := append([]*booking.Booking(nil), u.s.bookings...)
	ratePeriods := append([]pricing.RatePeriod(nil), u.s.ratePeriods...)
	offers := append([]pricing.Offer(nil), u.s.offers...)
	fees := append([]pricing.Fee(nil), u.s.fees...)

	if err := fn(ctx, fakeTx{u.s}); err != nil {
		u.s.bookings = bookings
		u.s.ratePeriods = ratePeriods
		u.s.offers = offers
		u.s.fees = fees
		return err
	}
	return nil
}
