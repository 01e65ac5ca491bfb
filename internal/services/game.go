package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// Error variables
var (
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrInvalidRating     = errors.New("rating must be between 1 and 10")
)

// GameReader defines read operations for the catalog.
type GameReader interface {
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
	GetByName(ctx context.Context, name string) (*models.GameDB, error)
	List(ctx context.Context, f models.GameFilter) ([]models.GameDB, int64, error)
}

// GameWriter defines write operations for the catalog.
type GameWriter interface {
	Save(ctx context.Context, g models.GameDB) error
	AddRating(ctx context.Context, gameID uuid.UUID, rating float64) (*models.GameDB, error)
}

// GameCacher caches single catalog entries.
type GameCacher interface {
	Get(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
	Set(ctx context.Context, game models.GameDB) error
	Delete(ctx context.Context, gameID uuid.UUID) error
}

// GameService serves the catalog with a Redis cache in front of single
// entry reads. Cache failures degrade to the database, never to an error.
type GameService struct {
	readRepo  GameReader
	writeRepo GameWriter
	cache     GameCacher
}

// NewGameService creates a new GameService.
func NewGameService(readRepo GameReader, writeRepo GameWriter, cache GameCacher) *GameService {
	return &GameService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		cache:     cache,
	}
}

// Get returns a catalog entry by id, preferring the cache.
func (s *GameService) Get(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, gameID)
		if err != nil {
			logger.Log.Warnw("game cache read failed", "game_id", gameID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	game, err := s.readRepo.GetByID(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to get game", "game_id", gameID, "err", err)
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *game); err != nil {
			logger.Log.Warnw("game cache write failed", "game_id", gameID, "err", err)
		}
	}
	return game, nil
}

// Create adds a new catalog entry. Names are unique.
func (s *GameService) Create(ctx context.Context, req models.CreateGameRequest) (*models.GameDB, error) {
	existing, err := s.readRepo.GetByName(ctx, req.Name)
	if err != nil {
		logger.Log.Errorw("failed to check game exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrGameAlreadyExists
	}

	categories := req.Categories
	if categories == nil {
		categories = []string{}
	}
	mechanics := req.Mechanics
	if mechanics == nil {
		mechanics = []string{}
	}

	game := models.GameDB{
		GameID:         uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		MinPlayers:     req.MinPlayers,
		MaxPlayers:     req.MaxPlayers,
		PlayingTimeMin: req.PlayingTimeMin,
		PlayingTimeMax: req.PlayingTimeMax,
		AgeMin:         req.AgeMin,
		AgeMax:         req.AgeMax,
		Categories:     categories,
		Mechanics:      mechanics,
		Complexity:     req.Complexity,
		Publisher:      req.Publisher,
		YearPublished:  req.YearPublished,
	}
	if err := s.writeRepo.Save(ctx, game); err != nil {
		logger.Log.Errorw("failed to save game", "name", req.Name, "err", err)
		return nil, err
	}
	return &game, nil
}

// List returns catalog entries matching the filter.
func (s *GameService) List(ctx context.Context, f models.GameFilter) ([]models.GameDB, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	games, total, err := s.readRepo.List(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to list games", "err", err)
		return nil, 0, err
	}
	return games, total, nil
}

// Rate folds a submission into the running average and invalidates the
// cached entry.
func (s *GameService) Rate(ctx context.Context, gameID uuid.UUID, rating float64) (*models.GameDB, error) {
	if rating < 1 || rating > 10 {
		return nil, ErrInvalidRating
	}

	game, err := s.writeRepo.AddRating(ctx, gameID, rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to add rating", "game_id", gameID, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, gameID); err != nil {
			logger.Log.Warnw("game cache invalidation failed", "game_id", gameID, "err", err)
		}
	}
	return game, nil
}
