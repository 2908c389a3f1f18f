package admin

import (
	"errors"
	"net/http"
	"strconv"

	"makotools/internal/constants"
	"makotools/internal/model"
	"makotools/internal/service"
	"makotools/internal/types"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ScoutAdminHandler manages the scout catalog.
type ScoutAdminHandler struct {
	campaignService *service.CampaignService
	logger          *logger.Logger
}

// NewScoutAdminHandler creates a scout admin handler.
func NewScoutAdminHandler(campaignService *service.CampaignService, logger *logger.Logger) *ScoutAdminHandler {
	return &ScoutAdminHandler{
		campaignService: campaignService,
		logger:          logger,
	}
}

// CreateScout stores a new scout.
// POST /api/v1/admin/scouts
func (h *ScoutAdminHandler) CreateScout(c *gin.Context) {
	var req types.ScoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	scout := scoutFromRequest(&req)
	if err := h.campaignService.CreateScout(c.Request.Context(), scout); err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidDateRange})
			return
		}
		h.logger.Error("failed to create scout", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": scout})
}

// UpdateScout replaces an existing scout.
// POST /api/v1/admin/scouts/:id
func (h *ScoutAdminHandler) UpdateScout(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	var req types.ScoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	scout := scoutFromRequest(&req)
	scout.GachaID = id
	if err := h.campaignService.UpdateScout(c.Request.Context(), scout); err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidDateRange})
			return
		}
		h.logger.Error("failed to update scout", "gacha_id", id, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate, "data": scout})
}

// DeleteScout removes a scout.
// DELETE /api/v1/admin/scouts/:id
func (h *ScoutAdminHandler) DeleteScout(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	if err := h.campaignService.DeleteScout(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete scout", "gacha_id", id, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessDelete})
}

func scoutFromRequest(req *types.ScoutRequest) *model.Scout {
	return &model.Scout{
		Name:         model.LocalizedText(req.Name),
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BannerID:     req.BannerID,
		EventID:      req.EventID,
		CharacterIDs: model.IDList(req.CharacterIDs),
	}
}
