package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ferienwerk/internal/handler/api"
	"ferienwerk/internal/handler/middleware"
	"ferienwerk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	quoteHandler *api.QuoteHandler,
	bookingHandler *api.BookingHandler,
	pricingHandler *api.PricingHandler,
	calendarHandler *api.CalendarHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, bookingHandler, pricingHandler, calendarHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	bookingHandler *api.BookingHandler,
	pricingHandler *api.PricingHandler,
	calendarHandler *api.CalendarHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.CreateQuote},
			{Method: http.MethodGet, Path: "/ical/:slug", Handler: calendarHandler.ExportICS},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/ical/sync", Handler: calendarHandler.SyncFeed},
				{Method: http.MethodPost, Path: "/ical/import", Handler: calendarHandler.ImportFeed},

				{Method: http.MethodGet, Path: "/price-periods", Handler: pricingHandler.ListRatePeriods},
				{Method: http.MethodPost, Path: "/price-periods", Handler: pricingHandler.CreateRatePeriod},
				{Method: http.MethodPut, Path: "/price-periods/:id", Handler: pricingHandler.UpdateRatePeriod},
				{Method: http.MethodDelete, Path: "/price-periods/:id", Handler: pricingHandler.DeleteRatePeriod},

				{Method: http.MethodGet, Path: "/lastminute", Handler: pricingHandler.ListOffers},
				{Method: http.MethodPost, Path: "/lastminute", Handler: pricingHandler.CreateOffer},
				{Method: http.MethodPut, Path: "/lastminute/:id", Handler: pricingHandler.UpdateOffer},
				{Method: http.MethodDelete, Path: "/lastminute/:id", Handler: pricingHandler.DeleteOffer},

				{Method: http.MethodGet, Path: "/fees", Handler: pricingHandler.ListFees},
				{Method: http.MethodPost, Path: "/fees", Handler: pricingHandler.CreateFee},
				{Method: http.MethodDelete, Path: "/fees/:id", Handler: pricingHandler.DeleteFee},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
