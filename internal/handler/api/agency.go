package api

import (
	"net/http"

	reqdto "fleet-console/internal/handler/dto/request"
	resdto "fleet-console/internal/handler/dto/response"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AgencyHandler struct {
	agencyCommands commands.AgencyCommands
	agencyQueries  queries.AgencyQueries
}

func NewAgencyHandler(agencyCommands commands.AgencyCommands, agencyQueries queries.AgencyQueries) *AgencyHandler {
	return &AgencyHandler{
		agencyCommands: agencyCommands,
		agencyQueries:  agencyQueries,
	}
}

// @Summary Create agency
// @Description Register a broker agency and its commission percentage
// @Tags agencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAgencyRequest true "Agency"
// @Success 201 {object} resdto.AgencyResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /agencies [post]
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	var req reqdto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.agencyCommands.CreateAgency(c.Request.Context(), commands.CreateAgencyParams{
		Name:              req.Name,
		CommissionPercent: req.CommissionPercent,
		ContactEmail:      req.ContactEmail,
	})
	if err != nil {
		if errs.Is(err, commands.ErrDomainValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAgencyView(view))
}

// @Summary Get agency
// @Tags agencies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Success 200 {object} resdto.AgencyResponse
// @Failure 404 {object} map[string]string
// @Router /agencies/{id} [get]
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.agencyQueries.GetAgency(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrAgencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgencyView(view))
}

// @Summary List agencies
// @Tags agencies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AgencyResponse
// @Router /agencies [get]
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	views, err := h.agencyQueries.ListAgencies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgencyViews(views))
}

// @Summary Update agency
// @Description Rename, adjust commission or deactivate an agency
// @Tags agencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Param request body reqdto.UpdateAgencyRequest true "Changes"
// @Success 200 {object} resdto.AgencyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /agencies/{id} [patch]
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.agencyCommands.UpdateAgency(c.Request.Context(), commands.UpdateAgencyParams{
		ID:                id,
		Name:              req.Name,
		CommissionPercent: req.CommissionPercent,
		IsActive:          req.IsActive,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAgencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not found"})
		case errs.Is(err, commands.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgencyView(view))
}
