package handler

import (
	"net/http"
	"strconv"

	"makotools/internal/constants"
	"makotools/internal/service"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the raw event records.
type EventHandler struct {
	campaignService *service.CampaignService
	logger          *logger.Logger
}

// NewEventHandler creates an event handler.
func NewEventHandler(campaignService *service.CampaignService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		campaignService: campaignService,
		logger:          logger,
	}
}

// GetEvents lists all events.
// GET /api/v1/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.campaignService.Events(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": events})
}

// GetEventByID returns one event.
// GET /api/v1/events/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	event, err := h.campaignService.EventByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrEventNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": event})
}
