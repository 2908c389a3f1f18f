package apis

import (
	"makotools/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes wires the endpoints that work without a session.
func RegisterPublicRoutes(v1 *gin.RouterGroup, userHandler *handler.UserHandler, campaignHandler *handler.CampaignHandler, eventHandler *handler.EventHandler, scoutHandler *handler.ScoutHandler, characterHandler *handler.CharacterHandler) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/token", userHandler.TokenLogin)
		auth.POST("/username/email", userHandler.UsernameEmail)
		auth.POST("/username/remind", userHandler.UsernameReminder)
		auth.POST("/username/validate", userHandler.ValidateUsername)
		auth.POST("/email/validate", userHandler.ValidateEmail)
	}

	campaigns := v1.Group("/campaigns")
	{
		// "upcoming" must register before the :category wildcard.
		campaigns.GET("/upcoming", campaignHandler.GetUpcoming)
		campaigns.GET("/:category", campaignHandler.GetShown)
		campaigns.GET("/:category/countdown", campaignHandler.StreamCountdown)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventHandler.GetEvents)
		events.GET("/:id", eventHandler.GetEventByID)
	}

	scouts := v1.Group("/scouts")
	{
		scouts.GET("", scoutHandler.GetScouts)
		scouts.GET("/:id", scoutHandler.GetScoutByID)
	}

	characters := v1.Group("/characters")
	{
		characters.GET("", characterHandler.GetCharacters)
		characters.GET("/:id", characterHandler.GetCharacterByID)
	}
}

// RegisterAuthRoutes wires the endpoints behind the session token check.
func RegisterAuthRoutes(authRouter *gin.RouterGroup, userHandler *handler.UserHandler, recommendationHandler *handler.RecommendationHandler) {
	user := authRouter.Group("/user")
	{
		user.GET("/info", userHandler.GetUserInfo)
		user.GET("/favorites", userHandler.GetFavorites)
		user.PUT("/favorites", userHandler.UpdateFavorites)
	}

	authRouter.GET("/recommendations", recommendationHandler.GetRecommendations)
}
