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

	"fleet-console/internal/domain/booking"
	"fleet-console/internal/handler/api"
	reqdto "fleet-console/internal/handler/dto/request"
	resdto "fleet-console/internal/handler/dto/response"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	createView    *queries.BookingView
	createErr     error
	createParams  *commands.CreateBookingParams
	transitionErr error
	transitioned  []uuid.UUID
	paymentID     uuid.UUID
	paymentErr    error
}

func (s *stubBookingCommands) CreateBooking(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
	s.createParams = &params
	return s.createView, s.createErr
}

func (s *stubBookingCommands) CancelBooking(_ context.Context, id uuid.UUID) error {
	s.transitioned = append(s.transitioned, id)
	return s.transitionErr
}

func (s *stubBookingCommands) MarkBookingDelivered(_ context.Context, id uuid.UUID) error {
	s.transitioned = append(s.transitioned, id)
	return s.transitionErr
}

func (s *stubBookingCommands) CloseBooking(_ context.Context, id uuid.UUID) error {
	s.transitioned = append(s.transitioned, id)
	return s.transitionErr
}

func (s *stubBookingCommands) RecordPayment(context.Context, commands.RecordPaymentParams) (uuid.UUID, error) {
	return s.paymentID, s.paymentErr
}

type stubBookingQueries struct {
	view    *queries.BookingView
	viewErr error
	page    *queries.BookingListPage
	pageErr error
	preview *queries.DurationPreview
}

func (s *stubBookingQueries) GetBooking(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.viewErr
}

func (s *stubBookingQueries) ListBookings(context.Context, int, string) (*queries.BookingListPage, error) {
	return s.page, s.pageErr
}

func (s *stubBookingQueries) ListPayments(context.Context, uuid.UUID) ([]*queries.PaymentView, error) {
	return nil, nil
}

func (s *stubBookingQueries) GetFinancialSummary(context.Context, uuid.UUID) (*queries.FinancialSummary, error) {
	return nil, queries.ErrBookingNotFound
}

func (s *stubBookingQueries) PreviewDuration(context.Context, time.Time, time.Time, int) (*queries.DurationPreview, error) {
	return s.preview, nil
}

type stubFineQueries struct{}

func (stubFineQueries) GetFine(context.Context, uuid.UUID) (*queries.FineView, error) {
	return nil, queries.ErrFineNotFound
}

func (stubFineQueries) ListFinesByBooking(context.Context, uuid.UUID) ([]*queries.FineView, error) {
	return nil, nil
}

func (stubFineQueries) ListFinesByStatus(context.Context, string, int) ([]*queries.FineView, error) {
	return nil, nil
}

type BookingHandlerTestSuite struct {
	suite.Suite
	engine  *gin.Engine
	cmds    *stubBookingCommands
	queries *stubBookingQueries
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterCustomValidators())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.cmds = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	handler := api.NewBookingHandler(s.cmds, s.queries, stubFineQueries{})

	s.engine = gin.New()
	s.engine.GET("/api/bookings", handler.ListBookings)
	s.engine.POST("/api/bookings", handler.CreateBooking)
	s.engine.GET("/api/bookings/:id", handler.GetBooking)
	s.engine.POST("/api/bookings/:id/cancel", handler.CancelBooking)
	s.engine.POST("/api/bookings/:id/payments", handler.RecordPayment)
	s.engine.POST("/api/bookings/preview-duration", handler.PreviewDuration)
}

func (s *BookingHandlerTestSuite) postJSON(path string, body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestCreateBookingReturnsCreated() {
	id := uuid.New()
	s.cmds.createView = &queries.BookingView{
		ID:         id,
		Reference:  "B-2026-0007",
		TotalDays:  6,
		TotalCents: 720_000,
		Status:     "confirmed",
	}

	w := s.postJSON("/api/bookings", map[string]any{
		"customer_name": "Ada Lovelace",
		"vehicle_plate": "GA123BC",
		"vehicle_model": "Huracan Evo",
		"delivery_at":   "2026-07-01T09:00:00Z",
		"collection_at": "2026-07-06T12:00:00Z",
	})

	s.Equal(http.StatusCreated, w.Code)
	var actual resdto.BookingResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &actual))
	expected := resdto.FromBookingView(s.cmds.createView)
	if diff := cmp.Diff(expected, &actual); diff != "" {
		s.Failf("response mismatch", "(-want +got):\n%s", diff)
	}

	s.Require().NotNil(s.cmds.createParams)
	s.Equal("GA123BC", s.cmds.createParams.VehiclePlate)
}

func (s *BookingHandlerTestSuite) TestCreateBookingRejectsBadPlate() {
	w := s.postJSON("/api/bookings", map[string]any{
		"customer_name": "Ada Lovelace",
		"vehicle_plate": "??",
		"vehicle_model": "Huracan Evo",
		"delivery_at":   "2026-07-01T09:00:00Z",
		"collection_at": "2026-07-06T12:00:00Z",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Nil(s.cmds.createParams)
}

func (s *BookingHandlerTestSuite) TestCreateBookingMapsUnknownAgencyTo404() {
	s.cmds.createErr = commands.ErrAgencyNotFound

	w := s.postJSON("/api/bookings", map[string]any{
		"customer_name": "Ada Lovelace",
		"vehicle_plate": "GA123BC",
		"vehicle_model": "Huracan Evo",
		"delivery_at":   "2026-07-01T09:00:00Z",
		"collection_at": "2026-07-06T12:00:00Z",
		"agency_id":     uuid.NewString(),
	})

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BookingHandlerTestSuite) TestCreateBookingMapsMarkedRentalSpanTo400() {
	s.cmds.createErr = errs.Mark(booking.ErrCollectionBeforeDelivery, commands.ErrInvalidRentalSpan)

	w := s.postJSON("/api/bookings", map[string]any{
		"customer_name": "Ada Lovelace",
		"vehicle_plate": "GA123BC",
		"vehicle_model": "Huracan Evo",
		"delivery_at":   "2026-07-06T12:00:00Z",
		"collection_at": "2026-07-01T09:00:00Z",
	})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestListBookingsMapsMarkedCursorTo400() {
	s.queries.pageErr = errs.Mark(errs.New("cursor: not base64url"), queries.ErrInvalidCursor)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?after=not-a-cursor", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetBookingNotFound() {
	s.queries.viewErr = queries.ErrBookingNotFound

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetBookingRejectsBadID() {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestCancelBookingReturnsNoContent() {
	id := uuid.New()
	w := s.postJSON("/api/bookings/"+id.String()+"/cancel", map[string]any{})

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal([]uuid.UUID{id}, s.cmds.transitioned)
}

func (s *BookingHandlerTestSuite) TestCancelBookingMapsBadTransitionTo422() {
	s.cmds.transitionErr = commands.ErrDomainValidationFailed

	w := s.postJSON("/api/bookings/"+uuid.NewString()+"/cancel", map[string]any{})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *BookingHandlerTestSuite) TestRecordPaymentReturnsID() {
	s.cmds.paymentID = uuid.New()

	w := s.postJSON("/api/bookings/"+uuid.NewString()+"/payments", map[string]any{
		"amount_cents": 50_000,
		"method":       "wire",
	})

	s.Equal(http.StatusCreated, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(s.cmds.paymentID.String(), resp["id"])
}

func (s *BookingHandlerTestSuite) TestRecordPaymentRejectsZeroAmount() {
	w := s.postJSON("/api/bookings/"+uuid.NewString()+"/payments", map[string]any{
		"amount_cents": 0,
		"method":       "wire",
	})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestPreviewDuration() {
	s.queries.preview = &queries.DurationPreview{
		TotalDays:         6,
		FormattedTotal:    "6 days",
		FormattedDuration: "5d 3h",
		HourTolerance:     1,
	}

	w := s.postJSON("/api/bookings/preview-duration", map[string]any{
		"delivery_at":   "2026-07-01T09:00:00Z",
		"collection_at": "2026-07-06T12:00:00Z",
	})

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(float64(6), resp["totalDays"])
	s.Equal("6 days", resp["formattedTotal"])
}

func (s *BookingHandlerTestSuite) TestPreviewDurationRejectsOutOfRangeTolerance() {
	w := s.postJSON("/api/bookings/preview-duration", map[string]any{
		"delivery_at":    "2026-07-01T09:00:00Z",
		"collection_at":  "2026-07-06T12:00:00Z",
		"hour_tolerance": 13,
	})

	s.Equal(http.StatusBadRequest, w.Code)
}
