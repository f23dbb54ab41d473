package components

import (
	"ferienwerk/internal/handler"
	"ferienwerk/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewPricingHandler,
		api.NewCalendarHandler,
	),
	fx.Invoke(handler.NewRouter),
)
