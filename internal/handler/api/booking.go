package api

import (
	"context"
	"net/http"
	"strconv"

	"fleet-console/internal/domain/booking"
	reqdto "fleet-console/internal/handler/dto/request"
	resdto "fleet-console/internal/handler/dto/response"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	fineQueries     queries.FineQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	fineQueries queries.FineQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		fineQueries:     fineQueries,
	}
}

// @Summary Create booking
// @Description Register a new rental booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingParams{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		VehiclePlate:   req.VehiclePlate,
		VehicleModel:   req.VehicleModel,
		DeliveryAt:     req.DeliveryAt,
		CollectionAt:   req.CollectionAt,
		DailyRateCents: req.DailyRateCents,
		AgencyID:       req.AgencyID,
		Note:           req.GetNote(),
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAgencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not found"})
		case errs.Is(err, commands.ErrInvalidRentalSpan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Collection must not be before delivery"})
		case errs.Is(err, commands.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Newest-first keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	page, err := h.bookingQueries.ListBookings(c.Request.Context(), limit, c.Query("after"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListPage(page))
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.CancelBooking)
}

// @Summary Mark booking delivered
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/deliver [post]
func (h *BookingHandler) MarkBookingDelivered(c *gin.Context) {
	h.transition(c, h.bookingCommands.MarkBookingDelivered)
}

// @Summary Close booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/close [post]
func (h *BookingHandler) CloseBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.CloseBooking)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, commands.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Record payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	paymentID, err := h.bookingCommands.RecordPayment(c.Request.Context(), commands.RecordPaymentParams{
		BookingID:   id,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		PaidAt:      req.GetPaidAt(),
		Note:        req.GetNote(),
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, commands.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": paymentID.String()})
}

// @Summary List booking payments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Router /bookings/{id}/payments [get]
func (h *BookingHandler) ListPayments(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListPayments(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary List booking fines
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.FineResponse
// @Router /bookings/{id}/fines [get]
func (h *BookingHandler) ListFines(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.fineQueries.ListFinesByBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFineViews(views))
}

// @Summary Booking financial summary
// @Description Rental, fines, invoiced and paid totals for one booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.FinancialSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/financial-summary [get]
func (h *BookingHandler) GetFinancialSummary(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.bookingQueries.GetFinancialSummary(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFinancialSummary(summary))
}

// @Summary Preview rental duration
// @Description Compute billable days for a prospective rental window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewDurationRequest true "Rental window"
// @Success 200 {object} resdto.DurationPreviewResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/preview-duration [post]
func (h *BookingHandler) PreviewDuration(c *gin.Context) {
	var req reqdto.PreviewDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preview, err := h.bookingQueries.PreviewDuration(c.Request.Context(), req.DeliveryAt, req.CollectionAt, req.HourTolerance)
	if err != nil {
		switch {
		case errs.Is(err, booking.ErrCollectionBeforeDelivery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Collection must not be before delivery"})
		case errs.Is(err, booking.ErrInvalidHourTolerance):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Hour tolerance must be between 1 and 12"})
		case errs.Is(err, booking.ErrMissingInstant):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery and collection are required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDurationPreview(preview))
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
