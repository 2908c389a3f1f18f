package handler

import (
	"net/http"
	"strconv"

	"makotools/internal/constants"
	"makotools/internal/service"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ScoutHandler serves the raw scout records.
type ScoutHandler struct {
	campaignService *service.CampaignService
	logger          *logger.Logger
}

// NewScoutHandler creates a scout handler.
func NewScoutHandler(campaignService *service.CampaignService, logger *logger.Logger) *ScoutHandler {
	return &ScoutHandler{
		campaignService: campaignService,
		logger:          logger,
	}
}

// GetScouts lists all scouts.
// GET /api/v1/scouts
func (h *ScoutHandler) GetScouts(c *gin.Context) {
	scouts, err := h.campaignService.Scouts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list scouts", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": scouts})
}

// GetScoutByID returns one scout.
// GET /api/v1/scouts/:id
func (h *ScoutHandler) GetScoutByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	scout, err := h.campaignService.ScoutByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrScoutNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": scout})
}
