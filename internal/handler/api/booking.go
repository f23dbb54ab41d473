package api

import (
	"errors"
	"net/http"

	"ferienwerk/internal/domain/booking"
	reqdto "ferienwerk/internal/handler/dto/request"
	resdto "ferienwerk/internal/handler/dto/response"
	"ferienwerk/internal/handler/httperr"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/commands"
	"ferienwerk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrys queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: qrys}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	arrival, departure, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), req.PropertyID, arrival, departure, req.TrimmedGuestName())
	if err != nil {
		var conflict *booking.ConflictError
		switch {
		case errors.As(err, &conflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Range is already booked",
				resdto.FromConflict(conflict.Existing.Stay()))
		case errors.Is(err, errs.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Departure must be after arrival", nil)
		case errors.Is(err, errs.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("property_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property_id", nil)
		return
	}

	views, err := h.queries.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, errs.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{Bookings: views})
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete booking", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
