package api

import (
	"errors"
	"net/http"

	reqdto "ferienwerk/internal/handler/dto/request"
	"ferienwerk/internal/handler/httperr"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quotes queries.QuoteQueries
}

func NewQuoteHandler(quotes queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	arrival, departure, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	view, err := h.quotes.Quote(c.Request.Context(), req.PropertyID, arrival, departure)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Departure must be after arrival", nil)
		case errors.Is(err, errs.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build quote", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
