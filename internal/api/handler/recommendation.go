package handler

import (
	"net/http"
	"strconv"
	"time"

	"makotools/internal/constants"
	"makotools/internal/model"
	"makotools/internal/service"
	"makotools/pkg/assets"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves per-user campaign recommendations.
type RecommendationHandler struct {
	recommendationService *service.RecommendationService
	characterService      *service.CharacterService
	assets                *assets.Resolver
	logger                *logger.Logger
}

// NewRecommendationHandler creates a recommendation handler.
func NewRecommendationHandler(recommendationService *service.RecommendationService, characterService *service.CharacterService, assets *assets.Resolver, logger *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		characterService:      characterService,
		assets:                assets,
		logger:                logger,
	}
}

// entryView adds the display pieces to a ranked entry: the banner URL and
// the name of the favorite character behind the "because you like" line.
type entryView struct {
	Campaign      model.Campaign `json:"campaign"`
	BannerURL     string         `json:"banner_url"`
	CharacterID   int64          `json:"character_id"`
	CharacterName string         `json:"character_name"`
}

// GetRecommendations returns the ranked upcoming campaigns for the signed-in
// user.
// GET /api/v1/recommendations
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetInt64("user_id")

	limit := service.DefaultRecommendationLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}

	now := time.Now()
	recs, err := h.recommendationService.ForUser(c.Request.Context(), userID, limit, now)
	if err != nil {
		h.logger.Error("failed to compute recommendations", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	msg := constants.SuccessGet
	switch recs.State {
	case service.StateNoFavorites:
		msg = constants.MsgNoFavorites
	case service.StateNoUpcoming:
		msg = constants.MsgNoUpcoming
	}

	names := h.characterNames(c)

	views := make([]entryView, 0, len(recs.Entries))
	for _, e := range recs.Entries {
		variant := assets.VariantEvolution
		if e.Campaign.Category == model.CategoryBirthday {
			variant = assets.VariantNormal
		}
		views = append(views, entryView{
			Campaign:      e.Campaign,
			BannerURL:     h.assets.CampaignBanner(e.Campaign.BannerID, variant),
			CharacterID:   e.CharacterID,
			CharacterName: names[e.CharacterID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  msg,
		"data": gin.H{
			"state":   recs.State,
			"entries": views,
		},
	})
}

func (h *RecommendationHandler) characterNames(c *gin.Context) map[int64]string {
	names := make(map[int64]string)
	characters, err := h.characterService.List(c.Request.Context())
	if err != nil {
		// Names are decoration only; entries still render without them.
		h.logger.Warn("failed to resolve character names", "error", err)
		return names
	}
	for _, ch := range characters {
		names[ch.CharacterID] = ch.FirstName.First()
	}
	return names
}
