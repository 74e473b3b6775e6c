package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "fleet-console/internal/handler/dto/request"
	resdto "fleet-console/internal/handler/dto/response"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceCommands commands.InvoiceCommands, invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Issue invoice
// @Description Issue an invoice against a booking with a yearly progressive number
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueInvoiceRequest true "Invoice"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /invoices [post]
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	var req reqdto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines := make([]commands.InvoiceLineParams, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, commands.InvoiceLineParams{
			Description: l.Description,
			AmountCents: l.AmountCents,
		})
	}

	issuedAt := time.Time{}
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	view, err := h.invoiceCommands.IssueInvoice(c.Request.Context(), commands.IssueInvoiceParams{
		BookingID: req.BookingID,
		IssuedAt:  issuedAt,
		Lines:     lines,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, commands.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.invoiceQueries.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary List invoices
// @Description Newest-first keyset pagination
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.InvoiceListResponse
// @Failure 400 {object} map[string]string
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	page, err := h.invoiceQueries.ListInvoices(c.Request.Context(), limit, c.Query("after"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceListPage(page))
}

// @Summary Void invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invoices/{id}/void [post]
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceCommands.VoidInvoice(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errs.Is(err, commands.ErrInvoiceVoided):
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice already voided"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
