package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"makotools/internal/model"
	"makotools/internal/repository"
	"makotools/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Mode labels a selector result: at least one campaign is presently live
// ("current"), or the shown campaign has not started yet ("next").
type Mode string

const (
	ModeCurrent Mode = "current"
	ModeNext    Mode = "next"
)

// ErrUnknownGroup is returned for an unrecognized campaign category group.
var ErrUnknownGroup = errors.New("unknown campaign category")

// ErrInvalidDateRange is returned when a write carries start > end.
var ErrInvalidDateRange = errors.New("start date must not be after end date")

// Category groups selectable through the API. The home page composes one
// independent selector per group.
var categoryGroups = map[string][]model.Category{
	"events":    {model.CategorySong, model.CategoryTour},
	"shuffles":  {model.CategoryShuffle},
	"scouts":    {model.CategoryScout, model.CategoryFeatureScout},
	"birthdays": {model.CategoryBirthday},
}

// SelectShown picks which campaigns of one category to display at now.
// Expired campaigns are dropped. If any campaign is live, all live ones are
// shown; otherwise only the earliest-ending upcoming one. The whole pass uses
// the single now instant handed in, never a re-sampled clock.
func SelectShown(campaigns []model.Campaign, now time.Time) ([]model.Campaign, Mode) {
	var upcoming []model.Campaign
	for _, c := range campaigns {
		if now.Before(c.End) {
			upcoming = append(upcoming, c)
		}
	}

	var shown []model.Campaign
	for _, c := range upcoming {
		if !now.Before(c.Start) {
			shown = append(shown, c)
		}
	}

	if len(shown) == 0 && len(upcoming) > 0 {
		next := upcoming[0]
		for _, c := range upcoming[1:] {
			if c.End.Before(next.End) {
				next = c
			}
		}
		shown = []model.Campaign{next}
	}

	mode := ModeCurrent
	for _, c := range shown {
		if now.Before(c.Start) {
			mode = ModeNext
			break
		}
	}

	return shown, mode
}

// CampaignService normalizes events, scouts and birthdays into campaigns and
// runs the current/next selection. Event and scout lists are cached in Redis;
// birthday campaigns are projected per call because they depend on now.
type CampaignService struct {
	eventRepo        *repository.EventRepository
	scoutRepo        *repository.ScoutRepository
	characterService *CharacterService
	redisClient      *redis.Client
	logger           *logger.Logger
}

// NewCampaignService creates a campaign service.
func NewCampaignService(eventRepo *repository.EventRepository, scoutRepo *repository.ScoutRepository, characterService *CharacterService, redisClient *redis.Client, logger *logger.Logger) *CampaignService {
	return &CampaignService{
		eventRepo:        eventRepo,
		scoutRepo:        scoutRepo,
		characterService: characterService,
		redisClient:      redisClient,
		logger:           logger,
	}
}

// Events returns all events ordered by start date.
func (s *CampaignService) Events(ctx context.Context) ([]model.Event, error) {
	cacheKey := "campaigns:events"
	cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var events []model.Event
		if err := json.Unmarshal(cachedData, &events); err == nil {
			return events, nil
		}
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list events", "error", err)
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, 5*time.Minute)
	}

	return events, nil
}

// EventByID returns one event.
func (s *CampaignService) EventByID(ctx context.Context, id int64) (*model.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Scouts returns all scouts ordered by start date.
func (s *CampaignService) Scouts(ctx context.Context) ([]model.Scout, error) {
	cacheKey := "campaigns:scouts"
	cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var scouts []model.Scout
		if err := json.Unmarshal(cachedData, &scouts); err == nil {
			return scouts, nil
		}
	}

	scouts, err := s.scoutRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list scouts", "error", err)
		return nil, err
	}

	if data, err := json.Marshal(scouts); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, 5*time.Minute)
	}

	return scouts, nil
}

// ScoutByID returns one scout.
func (s *CampaignService) ScoutByID(ctx context.Context, id int64) (*model.Scout, error) {
	return s.scoutRepo.GetByID(ctx, id)
}

// EventCampaigns returns all events normalized into campaigns.
func (s *CampaignService) EventCampaigns(ctx context.Context) ([]model.Campaign, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	campaigns := make([]model.Campaign, 0, len(events))
	for _, e := range events {
		campaigns = append(campaigns, e.Campaign())
	}
	return campaigns, nil
}

// ScoutCampaigns returns all scouts normalized into campaigns.
func (s *CampaignService) ScoutCampaigns(ctx context.Context) ([]model.Campaign, error) {
	scouts, err := s.Scouts(ctx)
	if err != nil {
		return nil, err
	}

	campaigns := make([]model.Campaign, 0, len(scouts))
	for _, sc := range scouts {
		campaigns = append(campaigns, sc.Campaign())
	}
	return campaigns, nil
}

// BirthdayCampaigns projects every character's birthday onto its nearest
// occurrence relative to now.
func (s *CampaignService) BirthdayCampaigns(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	characters, err := s.characterService.List(ctx)
	if err != nil {
		return nil, err
	}

	campaigns := make([]model.Campaign, 0, len(characters))
	for _, ch := range characters {
		campaigns = append(campaigns, ch.BirthdayCampaign(now))
	}
	return campaigns, nil
}

// All returns every campaign of every category.
func (s *CampaignService) All(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	events, err := s.EventCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	scouts, err := s.ScoutCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	birthdays, err := s.BirthdayCampaigns(ctx, now)
	if err != nil {
		return nil, err
	}

	all := make([]model.Campaign, 0, len(events)+len(scouts)+len(birthdays))
	all = append(all, birthdays...)
	all = append(all, events...)
	all = append(all, scouts...)
	return all, nil
}

// Group returns the campaigns behind a category group name.
func (s *CampaignService) Group(ctx context.Context, group string, now time.Time) ([]model.Campaign, error) {
	categories, ok := categoryGroups[group]
	if !ok {
		return nil, ErrUnknownGroup
	}

	var source []model.Campaign
	var err error
	switch group {
	case "events", "shuffles":
		source, err = s.EventCampaigns(ctx)
	case "scouts":
		source, err = s.ScoutCampaigns(ctx)
	case "birthdays":
		source, err = s.BirthdayCampaigns(ctx, now)
	}
	if err != nil {
		return nil, err
	}

	var campaigns []model.Campaign
	for _, c := range source {
		for _, cat := range categories {
			if c.Category == cat {
				campaigns = append(campaigns, c)
				break
			}
		}
	}
	return campaigns, nil
}

// Shown runs the current/next selection for a category group.
func (s *CampaignService) Shown(ctx context.Context, group string, now time.Time) ([]model.Campaign, Mode, error) {
	campaigns, err := s.Group(ctx, group, now)
	if err != nil {
		return nil, ModeCurrent, err
	}

	shown, mode := SelectShown(campaigns, now)
	return shown, mode, nil
}

// Upcoming returns every campaign that has not started yet, soonest first.
func (s *CampaignService) Upcoming(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	all, err := s.All(ctx, now)
	if err != nil {
		return nil, err
	}

	var upcoming []model.Campaign
	for _, c := range all {
		if c.Start.After(now) {
			upcoming = append(upcoming, c)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	return upcoming, nil
}

// CreateEvent validates and stores a new event.
func (s *CampaignService) CreateEvent(ctx context.Context, e *model.Event) error {
	if e.StartDate.After(e.EndDate) {
		return ErrInvalidDateRange
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// UpdateEvent validates and updates an event.
func (s *CampaignService) UpdateEvent(ctx context.Context, e *model.Event) error {
	if e.StartDate.After(e.EndDate) {
		return ErrInvalidDateRange
	}
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// DeleteEvent removes an event.
func (s *CampaignService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// CreateScout validates and stores a new scout.
func (s *CampaignService) CreateScout(ctx context.Context, sc *model.Scout) error {
	if sc.StartDate.After(sc.EndDate) {
		return ErrInvalidDateRange
	}
	if err := s.scoutRepo.Create(ctx, sc); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// UpdateScout validates and updates a scout.
func (s *CampaignService) UpdateScout(ctx context.Context, sc *model.Scout) error {
	if sc.StartDate.After(sc.EndDate) {
		return ErrInvalidDateRange
	}
	if err := s.scoutRepo.Update(ctx, sc); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// DeleteScout removes a scout.
func (s *CampaignService) DeleteScout(ctx context.Context, id int64) error {
	if err := s.scoutRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// InvalidateCache drops every cached campaign list.
func (s *CampaignService) InvalidateCache(ctx context.Context) error {
	pattern := "campaigns:*"
	iter := s.redisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("failed to delete cache key", "key", iter.Val(), "error", err)
		}
	}
	return iter.Err()
}

// RefreshCache drops and repopulates the campaign caches. Used by the
// periodic scheduler so most requests hit warm data.
func (s *CampaignService) RefreshCache(ctx context.Context) error {
	if err := s.InvalidateCache(ctx); err != nil {
		return err
	}
	if _, err := s.Events(ctx); err != nil {
		return fmt.Errorf("failed to refresh event cache: %w", err)
	}
	if _, err := s.Scouts(ctx); err != nil {
		return fmt.Errorf("failed to refresh scout cache: %w", err)
	}
	return nil
}
