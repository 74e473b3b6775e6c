package api

import (
	"net/http"
	"strconv"

	reqdto "fleet-console/internal/handler/dto/request"
	resdto "fleet-console/internal/handler/dto/response"
	"fleet-console/internal/handler/httperr"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FineHandler struct {
	fineCommands commands.FineCommands
	fineQueries  queries.FineQueries
}

func NewFineHandler(fineCommands commands.FineCommands, fineQueries queries.FineQueries) *FineHandler {
	return &FineHandler{
		fineCommands: fineCommands,
		fineQueries:  fineQueries,
	}
}

// @Summary Register fine
// @Description Attach a traffic fine received for a booking
// @Tags fines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterFineRequest true "Fine"
// @Success 201 {object} resdto.FineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /fines [post]
func (h *FineHandler) RegisterFine(c *gin.Context) {
	var req reqdto.RegisterFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.fineCommands.RegisterFine(c.Request.Context(), commands.RegisterFineParams{
		BookingID:   req.BookingID,
		Number:      req.Number,
		IssuedAt:    req.IssuedAt,
		AmountCents: req.AmountCents,
		Note:        req.GetNote(),
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFineView(view))
}

// @Summary Get fine
// @Tags fines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fine ID"
// @Success 200 {object} resdto.FineResponse
// @Failure 404 {object} map[string]string
// @Router /fines/{id} [get]
func (h *FineHandler) GetFine(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.fineQueries.GetFine(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrFineNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fine not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFineView(view))
}

// @Summary List fines by status
// @Tags fines
// @Produce json
// @Security BearerAuth
// @Param status query string false "Fine status (default pending)"
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {array} resdto.FineResponse
// @Router /fines [get]
func (h *FineHandler) ListFines(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")
	limit, _ := strconv.Atoi(c.Query("limit"))

	views, err := h.fineQueries.ListFinesByStatus(c.Request.Context(), status, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFineViews(views))
}

// @Summary Mark fine recharged
// @Description Record that the fine amount was recharged to the customer
// @Tags fines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fine ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /fines/{id}/recharge [post]
func (h *FineHandler) MarkFineRecharged(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.fineCommands.MarkFineRecharged(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrFineNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fine not found", nil)
		case errs.Is(err, commands.ErrFineAlreadyRecharged):
			httperr.AbortWithError(c, http.StatusConflict, err, "Fine already recharged", nil)
		case errs.Is(err, commands.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
