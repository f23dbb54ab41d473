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
	"github.com/google/uuid"
)

// PricingHandler serves the admin surface for the three pricing inputs:
// seasonal rate periods, last-minute offers and extra fees.
type PricingHandler struct {
	commands commands.PricingCommands
	queries  queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingCommands, qrys queries.PricingQueries) *PricingHandler {
	return &PricingHandler{commands: cmds, queries: qrys}
}

func (h *PricingHandler) ListRatePeriods(c *gin.Context) {
	propertyID, ok := queryPropertyID(c)
	if !ok {
		return
	}
	views, err := h.queries.ListRatePeriods(c.Request.Context(), propertyID)
	if err != nil {
		abortPricingError(c, err, "Failed to list rate periods")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate_periods": views})
}

func (h *PricingHandler) CreateRatePeriod(c *gin.Context) {
	var req reqdto.RatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}
	created, err := h.commands.CreateRatePeriod(c.Request.Context(), req.PropertyID, start, end, req.NightlyCents)
	if err != nil {
		abortPricingError(c, err, "Failed to create rate period")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRatePeriod(created))
}

func (h *PricingHandler) UpdateRatePeriod(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}
	updated, err := h.commands.UpdateRatePeriod(c.Request.Context(), id, start, end, req.NightlyCents)
	if err != nil {
		abortPricingError(c, err, "Failed to update rate period")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatePeriod(updated))
}

func (h *PricingHandler) DeleteRatePeriod(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.commands.DeleteRatePeriod(c.Request.Context(), id); err != nil {
		abortPricingError(c, err, "Failed to delete rate period")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PricingHandler) ListOffers(c *gin.Context) {
	propertyID, ok := queryPropertyID(c)
	if !ok {
		return
	}
	views, err := h.queries.ListOffers(c.Request.Context(), propertyID)
	if err != nil {
		abortPricingError(c, err, "Failed to list offers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": views})
}

func (h *PricingHandler) CreateOffer(c *gin.Context) {
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}
	created, err := h.commands.CreateOffer(c.Request.Context(), req.PropertyID, start, end, req.Percent, req.Note)
	if err != nil {
		abortPricingError(c, err, "Failed to create offer")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOffer(created))
}

func (h *PricingHandler) UpdateOffer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}
	updated, err := h.commands.UpdateOffer(c.Request.Context(), id, start, end, req.Percent, req.Note)
	if err != nil {
		abortPricingError(c, err, "Failed to update offer")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(updated))
}

func (h *PricingHandler) DeleteOffer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.commands.DeleteOffer(c.Request.Context(), id); err != nil {
		abortPricingError(c, err, "Failed to delete offer")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PricingHandler) ListFees(c *gin.Context) {
	propertyID, ok := queryPropertyID(c)
	if !ok {
		return
	}
	views, err := h.queries.ListFees(c.Request.Context(), propertyID)
	if err != nil {
		abortPricingError(c, err, "Failed to list fees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"fees": views})
}

func (h *PricingHandler) CreateFee(c *gin.Context) {
	var req reqdto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	created, err := h.commands.CreateFee(c.Request.Context(), req.PropertyID, req.Title, req.AmountCents, req.PerNight)
	if err != nil {
		abortPricingError(c, err, "Failed to create fee")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFee(created))
}

func (h *PricingHandler) DeleteFee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.commands.DeleteFee(c.Request.Context(), id); err != nil {
		abortPricingError(c, err, "Failed to delete fee")
		return
	}
	c.Status(http.StatusNoContent)
}

func abortPricingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End must be after start", nil)
	case errors.Is(err, errs.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, errs.ErrRatePeriodNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rate period not found", nil)
	case errors.Is(err, errs.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errors.Is(err, errs.ErrFeeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Fee not found", nil)
	case errors.Is(err, errs.ErrRatePeriodConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Rate period overlaps an existing one", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid pricing data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func queryPropertyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("property_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property_id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
