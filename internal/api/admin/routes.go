package admin

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes wires the catalog management endpoints. The caller
// attaches the admin auth middleware to the group before registration.
func RegisterAdminRoutes(router *gin.RouterGroup, eventAdminHandler *EventAdminHandler, scoutAdminHandler *ScoutAdminHandler) {
	events := router.Group("/events")
	{
		events.POST("", eventAdminHandler.CreateEvent)
		events.POST("/:id", eventAdminHandler.UpdateEvent)
		events.DELETE("/:id", eventAdminHandler.DeleteEvent)
	}

	scouts := router.Group("/scouts")
	{
		scouts.POST("", scoutAdminHandler.CreateScout)
		scouts.POST("/:id", scoutAdminHandler.UpdateScout)
		scouts.DELETE("/:id", scoutAdminHandler.DeleteScout)
	}

	router.POST("/cache/refresh", eventAdminHandler.RefreshCache)
}
