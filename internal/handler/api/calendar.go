package api

import (
	"errors"
	"net/http"

	reqdto "ferienwerk/internal/handler/dto/request"
	resdto "ferienwerk/internal/handler/dto/response"
	"ferienwerk/internal/handler/httperr"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/commands"
	"ferienwerk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	reconcile commands.ReconcileCommands
	calendar  queries.CalendarQueries
}

func NewCalendarHandler(reconcile commands.ReconcileCommands, calendar queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{reconcile: reconcile, calendar: calendar}
}

// SyncFeed pulls the property's stored feed URL and imports new events.
func (h *CalendarHandler) SyncFeed(c *gin.Context) {
	var req reqdto.SyncFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reconcile.Reconcile(c.Request.Context(), req.PropertyID, commands.FeedSource{})
	if err != nil {
		abortReconcileError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ReconcileResponse{Created: result.Created, Total: result.Total})
}

// ImportFeed reconciles from a caller-supplied URL or raw ICS document.
func (h *CalendarHandler) ImportFeed(c *gin.Context) {
	var req reqdto.ImportFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.URL == "" && req.ICS == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("neither url nor ics supplied"), "Either url or ics is required", nil)
		return
	}

	src := commands.FeedSource{URL: req.URL, Raw: []byte(req.ICS)}
	result, err := h.reconcile.Reconcile(c.Request.Context(), req.PropertyID, src)
	if err != nil {
		abortReconcileError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ReconcileResponse{Created: result.Created, Total: result.Total})
}

// ExportICS serves the property's confirmed bookings as an iCalendar feed,
// keyed by slug so the URL can be handed to external calendar apps.
func (h *CalendarHandler) ExportICS(c *gin.Context) {
	data, err := h.calendar.ExportICS(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, errs.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to export calendar", nil)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

func abortReconcileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, errs.ErrFeedURLMissing):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Property has no feed URL configured", nil)
	case errors.Is(err, errs.ErrFeedUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Feed could not be fetched or parsed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reconcile feed", nil)
	}
}
