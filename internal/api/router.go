package api

import (
	"makotools/config"
	"makotools/internal/api/admin"
	"makotools/internal/api/apis"
	"makotools/internal/api/handler"
	"makotools/internal/middleware"
	"makotools/internal/repository"
	"makotools/internal/scheduler"
	"makotools/internal/service"
	"makotools/pkg/assets"
	"makotools/pkg/async"
	"makotools/pkg/email"
	"makotools/pkg/identity"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// SetupRouter builds the full API surface. The returned cleanup function
// stops the background worker pool and schedulers; call it on shutdown.
func SetupRouter(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, redisClient *redis.Client) (*gin.Engine, func()) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	worker := async.NewWorker(100, logger)
	worker.Start(5)

	characterRepo := repository.NewCharacterRepository(db)
	eventRepo := repository.NewEventRepository(db)
	scoutRepo := repository.NewScoutRepository(db)
	userRepo := repository.NewUserRepository(db)

	emailService := email.NewService(email.Config{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
	}, logger)

	identityClient := identity.NewClient(
		cfg.Identity.APIKey,
		cfg.Identity.APISecret,
		cfg.Identity.APIServer,
	)

	assetResolver := assets.NewResolver(cfg.Assets.BaseURL)

	characterService := service.NewCharacterService(characterRepo, redisClient, logger)
	campaignService := service.NewCampaignService(eventRepo, scoutRepo, characterService, redisClient, logger)
	userService := service.NewUserService(userRepo, redisClient, worker, emailService, identityClient, logger)
	recommendationService := service.NewRecommendationService(campaignService, userService, logger)

	campaignScheduler := scheduler.NewCampaignScheduler(campaignService, logger)
	campaignScheduler.Start()

	userHandler := handler.NewUserHandler(userService, logger)
	campaignHandler := handler.NewCampaignHandler(campaignService, assetResolver, logger)
	eventHandler := handler.NewEventHandler(campaignService, logger)
	scoutHandler := handler.NewScoutHandler(campaignService, logger)
	characterHandler := handler.NewCharacterHandler(characterService, assetResolver, logger)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, characterService, assetResolver, logger)
	systemHandler := handler.NewSystemHandler(db, redisClient, cfg.Assets, logger)

	eventAdminHandler := admin.NewEventAdminHandler(campaignService, logger)
	scoutAdminHandler := admin.NewScoutAdminHandler(campaignService, logger)

	router.GET("/health", systemHandler.Health)

	v1 := router.Group("/api/v1")

	authRouter := v1.Group("")
	authRouter.Use(middleware.UserAuth(userService))

	apis.RegisterPublicRoutes(v1, userHandler, campaignHandler, eventHandler, scoutHandler, characterHandler)
	apis.RegisterAuthRoutes(authRouter, userHandler, recommendationHandler)

	adminRouter := v1.Group("/admin")
	adminRouter.Use(middleware.AdminAuth(userService))
	admin.RegisterAdminRoutes(adminRouter, eventAdminHandler, scoutAdminHandler)

	cleanup := func() {
		campaignScheduler.Stop()
		worker.Stop()
	}

	return router, cleanup
}
