package components

import (
	"ferienwerk/internal/infra/ical"
	"ferienwerk/internal/pkg/clock"
	"ferienwerk/internal/pkg/config"
	"ferienwerk/internal/usecase/commands"
	"ferienwerk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.FeedConfig {
		return cfg.Feed
	},
	fx.Annotate(
		ical.NewParser,
		fx.As(new(commands.FeedParser)),
	),
	fx.Annotate(
		ical.NewEncoder,
		fx.As(new(queries.FeedEncoder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewPricingCommands,
		commands.NewReconcileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewQuoteQueries,
		queries.NewPricingQueries,
		queries.NewCalendarQueries,
	),
)
