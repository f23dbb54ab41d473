//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ferienwerk/internal/domain/booking"
	"ferienwerk/internal/domain/stay"
	"ferienwerk/internal/handler/api"
	"ferienwerk/internal/handler/middleware"
	"ferienwerk/internal/pkg/errs"
	"ferienwerk/internal/usecase/commands"
	"ferienwerk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubBookingCommands returns canned results so handler tests exercise only
// the HTTP mapping.
type stubBookingCommands struct {
	createResult *booking.Booking
	createErr    error
	deleteErr    error
}

func (s *stubBookingCommands) Create(_ context.Context, _ uuid.UUID, _, _ time.Time, _ string) (*booking.Booking, error) {
	return s.createResult, s.createErr
}

func (s *stubBookingCommands) Delete(_ context.Context, _ uuid.UUID) error {
	return s.deleteErr
}

type stubBookingQueries struct {
	views []queries.BookingView
	err   error
}

func (s *stubBookingQueries) ListByProperty(_ context.Context, _ uuid.UUID) ([]queries.BookingView, error) {
	return s.views, s.err
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
	queries  *stubBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.commands = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	handler := api.NewBookingHandler(s.commands, s.queries)

	s.router.POST("/bookings", handler.CreateBooking)
	s.router.GET("/bookings", handler.ListBookings)
	s.router.DELETE("/bookings/:id", handler.DeleteBooking)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) postJSON(url string, body map[string]any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func mustStay(s *BookingHandlerTestSuite, start, end string) stay.DateRange {
	from, err := stay.ParseDate(start)
	s.Require().NoError(err)
	to, err := stay.ParseDate(end)
	s.Require().NoError(err)
	r, err := stay.NewDateRange(from, to)
	s.Require().NoError(err)
	return r
}

func (s *BookingHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"property_id": uuid.New().String(),
		"start_date":  "2025-10-01",
		"end_date":    "2025-10-04",
		"guest_name":  "Alice",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("created", func() {
		r := mustStay(s, "2025-10-01", "2025-10-04")
		b, err := booking.NewBooking(uuid.New(), r, "Alice")
		s.Require().NoError(err)
		s.commands.createResult = b
		s.commands.createErr = nil

		rec := s.postJSON("/bookings", s.validBody())

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "2025-10-01")
		s.Contains(rec.Body.String(), "Alice")
	})

	s.Run("conflict returns 409 with the blocking range", func() {
		r := mustStay(s, "2025-10-02", "2025-10-05")
		existing, err := booking.NewBooking(uuid.New(), r, "Existing")
		s.Require().NoError(err)
		s.commands.createResult = nil
		s.commands.createErr = &booking.ConflictError{Existing: existing}

		rec := s.postJSON("/bookings", s.validBody())

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "2025-10-02")
		s.Contains(rec.Body.String(), "2025-10-05")
	})

	s.Run("invalid range returns 400", func() {
		s.commands.createErr = errs.Mark(stay.ErrInvalidRange, errs.ErrInvalidRange)

		rec := s.postJSON("/bookings", s.validBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown property returns 404", func() {
		s.commands.createErr = errs.ErrPropertyNotFound

		rec := s.postJSON("/bookings", s.validBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed date returns 400 before the usecase runs", func() {
		body := s.validBody()
		body["start_date"] = "01.10.2025"

		rec := s.postJSON("/bookings", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing body returns 400", func() {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("ok", func() {
		s.queries.views = []queries.BookingView{
			{ID: uuid.New(), StartDate: "2025-10-01", EndDate: "2025-10-04", GuestName: "Alice", Status: "confirmed"},
		}
		s.queries.err = nil

		req := httptest.NewRequest(http.MethodGet, "/bookings?property_id="+uuid.New().String(), nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Alice")
	})

	s.Run("missing property_id returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown property returns 404", func() {
		s.queries.err = errs.ErrPropertyNotFound

		req := httptest.NewRequest(http.MethodGet, "/bookings?property_id="+uuid.New().String(), nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	s.Run("no content on success", func() {
		s.commands.deleteErr = nil

		req := httptest.NewRequest(http.MethodDelete, "/bookings/"+uuid.New().String(), nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown id returns 404", func() {
		s.commands.deleteErr = errs.ErrBookingNotFound

		req := httptest.NewRequest(http.MethodDelete, "/bookings/"+uuid.New().String(), nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id returns 400", func() {
		req := httptest.NewRequest(http.MethodDelete, "/bookings/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

var _ commands.BookingCommands = (*stubBookingCommands)(nil)
var _ queries.BookingQueries = (*stubBookingQueries)(nil)
