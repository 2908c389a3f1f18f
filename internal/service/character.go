package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"makotools/internal/model"
	"makotools/internal/repository"
	"makotools/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CharacterService serves the character roster with a Redis cache in front of
// the database. The roster changes rarely, so a short TTL is enough.
type CharacterService struct {
	characterRepo *repository.CharacterRepository
	redisClient   *redis.Client
	logger        *logger.Logger
}

// NewCharacterService creates a character service.
func NewCharacterService(characterRepo *repository.CharacterRepository, redisClient *redis.Client, logger *logger.Logger) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		redisClient:   redisClient,
		logger:        logger,
	}
}

// List returns all characters in display order.
func (s *CharacterService) List(ctx context.Context) ([]model.Character, error) {
	cacheKey := "characters:list"
	cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var characters []model.Character
		if err := json.Unmarshal(cachedData, &characters); err == nil {
			return characters, nil
		}
	}

	characters, err := s.characterRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list characters", "error", err)
		return nil, err
	}

	if data, err := json.Marshal(characters); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, 10*time.Minute)
	}

	return characters, nil
}

// GetByID returns one character.
func (s *CharacterService) GetByID(ctx context.Context, id int64) (*model.Character, error) {
	cacheKey := fmt.Sprintf("characters:detail:%d", id)
	cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var character model.Character
		if err := json.Unmarshal(cachedData, &character); err == nil {
			return &character, nil
		}
	}

	character, err := s.characterRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get character", "id", id, "error", err)
		return nil, err
	}

	if data, err := json.Marshal(character); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, 10*time.Minute)
	}

	return character, nil
}
