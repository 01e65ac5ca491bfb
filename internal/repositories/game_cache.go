package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// GameCacheRepository caches catalog entries in Redis so hot game reads
// skip Postgres. A miss is (nil, nil), never an error.
type GameCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameCacheRepository(client *redis.Client, ttl time.Duration) *GameCacheRepository {
	return &GameCacheRepository{client: client, ttl: ttl}
}

func gameCacheKey(gameID uuid.UUID) string {
	return "game:" + gameID.String()
}

// Get returns the cached entry, or nil on a miss.
func (r *GameCacheRepository) Get(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error) {
	data, err := r.client.Get(ctx, gameCacheKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var game models.GameDB
	if err := json.Unmarshal(data, &game); err != nil {
		logger.Log.Errorw("failed to unmarshal cached game", "game_id", gameID, "error", err)
		return nil, err
	}
	return &game, nil
}

// Set stores the entry with the configured TTL.
func (r *GameCacheRepository) Set(ctx context.Context, game models.GameDB) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, gameCacheKey(game.GameID), data, r.ttl).Err()
}

// Delete drops the cached entry, used after a rating mutation.
func (r *GameCacheRepository) Delete(ctx context.Context, gameID uuid.UUID) error {
	return r.client.Del(ctx, gameCacheKey(gameID)).Err()
}
