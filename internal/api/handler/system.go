package handler

import (
	"net/http"
	"time"

	"makotools/config"
	"makotools/pkg/logger"
	"makotools/pkg/network"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// SystemHandler serves the health check.
type SystemHandler struct {
	db          *sqlx.DB
	redisClient *redis.Client
	assetsCfg   config.AssetsConfig
	logger      *logger.Logger
}

// NewSystemHandler creates a system handler.
func NewSystemHandler(db *sqlx.DB, redisClient *redis.Client, assetsCfg config.AssetsConfig, logger *logger.Logger) *SystemHandler {
	return &SystemHandler{
		db:          db,
		redisClient: redisClient,
		assetsCfg:   assetsCfg,
		logger:      logger,
	}
}

// Health reports the state of the server and its upstreams.
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	dbOK := h.db.PingContext(ctx) == nil
	redisOK := h.redisClient.Ping(ctx).Err() == nil

	cdnOK := true
	if h.assetsCfg.ProbeHost != "" {
		cdnOK = network.CheckHost(h.assetsCfg.ProbeHost, h.assetsCfg.ProbePort, 3*time.Second)
	}

	status := "ok"
	if !dbOK || !redisOK {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"database":   dbOK,
		"redis":      redisOK,
		"assets_cdn": cdnOK,
	})
}
