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

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, settingsQueries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Get operator settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Failure 404 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	view, err := h.settingsQueries.GetSettings(c.Request.Context())
	if err != nil {
		if errs.Is(err, queries.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Update operator settings
// @Description Adjust hour tolerance, default daily rate and notification toggles
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Changes"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.settingsCommands.UpdateSettings(c.Request.Context(), commands.UpdateSettingsParams{
		HourTolerance:         req.HourTolerance,
		DefaultDailyRateCents: req.DefaultDailyRateCents,
		NotifyBookingCreated:  req.NotifyBookingCreated,
		NotifyFineRegistered:  req.NotifyFineRegistered,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSettingsNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		case errs.Is(err, commands.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}
