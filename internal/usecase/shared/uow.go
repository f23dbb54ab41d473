package shared

import "context"

// Tx exposes the write-side repositories bound to one transaction.
type Tx interface {
	Properties() PropertyRepository
	Bookings() BookingRepository
	RatePeriods() RatePeriodRepository
	Offers() OfferRepository
	Fees() FeeRepository
}

// UnitOfWork spans "read existing rows" through "insert" in a single
// transaction so two concurrent writers cannot both observe "no conflict"
// and insert overlapping ranges.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
