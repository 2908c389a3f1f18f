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

// EventAdminHandler manages the event catalog.
type EventAdminHandler struct {
	campaignService *service.CampaignService
	logger          *logger.Logger
}

// NewEventAdminHandler creates an event admin handler.
func NewEventAdminHandler(campaignService *service.CampaignService, logger *logger.Logger) *EventAdminHandler {
	return &EventAdminHandler{
		campaignService: campaignService,
		logger:          logger,
	}
}

// CreateEvent stores a new event.
// POST /api/v1/admin/events
func (h *EventAdminHandler) CreateEvent(c *gin.Context) {
	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	event := eventFromRequest(&req)
	if err := h.campaignService.CreateEvent(c.Request.Context(), event); err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidDateRange})
			return
		}
		h.logger.Error("failed to create event", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": event})
}

// UpdateEvent replaces an existing event.
// POST /api/v1/admin/events/:id
func (h *EventAdminHandler) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	event := eventFromRequest(&req)
	event.EventID = id
	if err := h.campaignService.UpdateEvent(c.Request.Context(), event); err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidDateRange})
			return
		}
		h.logger.Error("failed to update event", "event_id", id, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate, "data": event})
}

// DeleteEvent removes an event.
// DELETE /api/v1/admin/events/:id
func (h *EventAdminHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	if err := h.campaignService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete event", "event_id", id, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessDelete})
}

// RefreshCache drops and repopulates the campaign caches on demand.
// POST /api/v1/admin/cache/refresh
func (h *EventAdminHandler) RefreshCache(c *gin.Context) {
	if err := h.campaignService.RefreshCache(c.Request.Context()); err != nil {
		h.logger.Error("manual cache refresh failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate})
}

func eventFromRequest(req *types.EventRequest) *model.Event {
	return &model.Event{
		Name:         model.LocalizedText(req.Name),
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BannerID:     req.BannerID,
		GachaID:      req.GachaID,
		CharacterIDs: model.IDList(req.CharacterIDs),
	}
}
