package components

import (
	repo_impl "ferienwerk/internal/infra/repository"
	"ferienwerk/internal/infra/uow"
	"ferienwerk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule wires the pool-bound repositories used by the read side
// and the unit of work used by the write side. Inside a transaction the unit
// of work rebuilds the same repositories over the transaction handle.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repo_impl.NewPropertyRepository,
			fx.As(new(shared.PropertyRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewRatePeriodRepository,
			fx.As(new(shared.RatePeriodRepository)),
		),
		fx.Annotate(
			repo_impl.NewOfferRepository,
			fx.As(new(shared.OfferRepository)),
		),
		fx.Annotate(
			repo_impl.NewFeeRepository,
			fx.As(new(shared.FeeRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
