package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"makotools/internal/constants"
	"makotools/internal/model"
	"makotools/internal/service"
	"makotools/pkg/assets"
	"makotools/pkg/countdown"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CampaignHandler serves the current/next selection, the upcoming side panel
// and the streaming countdown.
type CampaignHandler struct {
	campaignService *service.CampaignService
	assets          *assets.Resolver
	logger          *logger.Logger
}

// NewCampaignHandler creates a campaign handler.
func NewCampaignHandler(campaignService *service.CampaignService, assets *assets.Resolver, logger *logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		assets:          assets,
		logger:          logger,
	}
}

// campaignView is a campaign plus its resolved banner image URL.
type campaignView struct {
	model.Campaign
	BannerURL string `json:"banner_url"`
}

func (h *CampaignHandler) views(campaigns []model.Campaign) []campaignView {
	views := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		variant := assets.VariantEvolution
		if c.Category == model.CategoryBirthday {
			variant = assets.VariantNormal
		}
		views = append(views, campaignView{
			Campaign:  c,
			BannerURL: h.assets.CampaignBanner(c.BannerID, variant),
		})
	}
	return views
}

// GetShown returns the shown set and mode for one category group.
// GET /api/v1/campaigns/:category
func (h *CampaignHandler) GetShown(c *gin.Context) {
	group := c.Param("category")
	now := time.Now()

	shown, mode, err := h.campaignService.Shown(c.Request.Context(), group, now)
	if err != nil {
		if errors.Is(err, service.ErrUnknownGroup) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidCategory})
			return
		}
		h.logger.Error("failed to select campaigns", "category", group, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	msg := constants.SuccessGet
	if len(shown) == 0 {
		msg = constants.MsgNoActiveCampaigns
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  msg,
		"data": gin.H{
			"mode":      mode,
			"campaigns": h.views(shown),
		},
	})
}

// GetUpcoming returns every not-yet-started campaign, soonest first.
// GET /api/v1/campaigns/upcoming
func (h *CampaignHandler) GetUpcoming(c *gin.Context) {
	now := time.Now()

	upcoming, err := h.campaignService.Upcoming(c.Request.Context(), now)
	if err != nil {
		h.logger.Error("failed to list upcoming campaigns", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  constants.SuccessGet,
		"data": h.views(upcoming),
	})
}

// StreamCountdown streams the countdown for a category group as server-sent
// events, one tick per second. The ticker is released when the client goes
// away or the target passes.
// GET /api/v1/campaigns/:category/countdown
func (h *CampaignHandler) StreamCountdown(c *gin.Context) {
	group := c.Param("category")
	now := time.Now()

	shown, mode, err := h.campaignService.Shown(c.Request.Context(), group, now)
	if err != nil {
		if errors.Is(err, service.ErrUnknownGroup) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidCategory})
			return
		}
		h.logger.Error("failed to select campaigns", "category", group, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	if len(shown) == 0 {
		c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.MsgNoActiveCampaigns})
		return
	}

	// Count toward the end of a live campaign, toward the start of an
	// upcoming one.
	target := shown[0].End
	status := "end"
	if mode == service.ModeNext {
		target = shown[0].Start
		status = "start"
	}

	ticker := countdown.NewTicker(target)
	defer ticker.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ticker.C:
			if !ok {
				return false
			}
			c.SSEvent("countdown", gin.H{
				"campaign_id": shown[0].ID,
				"category":    shown[0].Category,
				"status":      status,
				"remaining":   msg,
			})
			return time.Now().Before(target)
		case <-c.Request.Context().Done():
			return false
		}
	})
}
