package service

import (
	"context"
	"sort"
	"time"

	"makotools/internal/model"
	"makotools/pkg/logger"
)

// DefaultRecommendationLimit caps how many recommendation entries are
// selected for a user.
const DefaultRecommendationLimit = 6

// Entry pairs a campaign with the favorited character that produced it.
type Entry struct {
	Campaign    model.Campaign `json:"campaign"`
	CharacterID int64          `json:"character_id"`
}

// RecommendationState is a terminal display state, not an error.
type RecommendationState string

const (
	StateOK          RecommendationState = "ok"
	StateNoFavorites RecommendationState = "no_favorites"
	StateNoUpcoming  RecommendationState = "no_upcoming"
)

// Recommendations is the ranked result for one user.
type Recommendations struct {
	State   RecommendationState `json:"state"`
	Entries []Entry             `json:"entries"`
}

// PairFavorites builds (campaign, favorite) pairs: one pair per favorited
// character a campaign features, in favorite-list order. A campaign tied to
// several favorites appears once per favorite; duplicates in the favorite
// list are carried through as stored.
func PairFavorites(campaigns []model.Campaign, favoriteIDs []int64) []Entry {
	var pairs []Entry
	for _, fave := range favoriteIDs {
		for _, c := range campaigns {
			if c.Features(fave) {
				pairs = append(pairs, Entry{Campaign: c, CharacterID: fave})
			}
		}
	}
	return pairs
}

// RankUpcoming selects the closest-starting campaigns out of the pairs. The
// campaigns are stably sorted by start, the first min(limit, len) are taken,
// each is re-associated with the FIRST pair naming it (a campaign favorited
// for several reasons keeps only one linkage), and campaigns that have
// already started are dropped. The single now instant is used for every
// comparison in the pass.
func RankUpcoming(pairs []Entry, limit int, now time.Time) []Entry {
	if limit > len(pairs) {
		limit = len(pairs)
	}

	campaigns := make([]model.Campaign, len(pairs))
	for i, p := range pairs {
		campaigns[i] = p.Campaign
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].Start.Before(campaigns[j].Start)
	})

	if limit < len(campaigns) {
		campaigns = campaigns[:limit]
	}

	var entries []Entry
	for _, c := range campaigns {
		if !c.Start.After(now) {
			continue
		}
		for _, p := range pairs {
			if p.Campaign.Same(c) {
				entries = append(entries, Entry{Campaign: c, CharacterID: p.CharacterID})
				break
			}
		}
	}
	return entries
}

// RecommendationService ranks upcoming campaigns against a user's favorite
// characters.
type RecommendationService struct {
	campaignService *CampaignService
	userService     UserService
	logger          *logger.Logger
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(campaignService *CampaignService, userService UserService, logger *logger.Logger) *RecommendationService {
	return &RecommendationService{
		campaignService: campaignService,
		userService:     userService,
		logger:          logger,
	}
}

// ForUser computes the ranked recommendations for one user at now. A user
// without favorites short-circuits before any ranking happens.
func (s *RecommendationService) ForUser(ctx context.Context, userID int64, limit int, now time.Time) (*Recommendations, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	favorites, err := s.userService.Favorites(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load favorites", "user_id", userID, "error", err)
		return nil, err
	}
	if len(favorites) == 0 {
		return &Recommendations{State: StateNoFavorites}, nil
	}

	campaigns, err := s.campaignService.All(ctx, now)
	if err != nil {
		return nil, err
	}

	entries := RankUpcoming(PairFavorites(campaigns, favorites), limit, now)
	if len(entries) == 0 {
		return &Recommendations{State: StateNoUpcoming}, nil
	}

	return &Recommendations{State: StateOK, Entries: entries}, nil
}
