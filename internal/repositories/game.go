package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

const gameColumns = `
	game_id, name, description, min_players, max_players,
	playing_time_min, playing_time_max, age_min, age_max,
	categories, mechanics, complexity, rating_average, rating_count,
	publisher, year_published, created_at, updated_at
`

// GameReadRepository handles catalog read operations
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// GetByID returns the catalog entry, or nil if absent.
func (r *GameReadRepository) GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE game_id = $1`

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, gameID)

	logger.Log.Infow("game query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByName returns the catalog entry with the given unique name, or nil.
func (r *GameReadRepository) GetByName(ctx context.Context, name string) (*models.GameDB, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE name = $1`

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, name)

	logger.Log.Infow("game query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// List returns catalog entries matching the filter with the total count.
func (r *GameReadRepository) List(ctx context.Context, f models.GameFilter) ([]models.GameDB, int64, error) {
	where := []string{"TRUE"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != nil {
		p := arg("%" + *f.Search + "%")
		where = append(where, fmt.Sprintf("(name ILIKE %[1]s OR description ILIKE %[1]s)", p))
	}
	if len(f.Categories) > 0 {
		where = append(where, "categories && "+arg(pq.Array(f.Categories)))
	}
	if len(f.Mechanics) > 0 {
		where = append(where, "mechanics && "+arg(pq.Array(f.Mechanics)))
	}
	if f.MinPlayers != nil {
		where = append(where, "max_players >= "+arg(*f.MinPlayers))
	}
	if f.MaxPlayers != nil {
		where = append(where, "min_players <= "+arg(*f.MaxPlayers))
	}
	if f.Complexity != nil {
		where = append(where, "complexity = "+arg(*f.Complexity))
	}
	if f.MinRating != nil {
		where = append(where, "rating_average >= "+arg(*f.MinRating))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(1) FROM games WHERE ` + whereClause
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	order := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		order = "ASC"
	}
	var sortColumn string
	switch f.SortBy {
	case models.GameSortName:
		sortColumn = "name"
	case models.GameSortYear:
		sortColumn = "year_published"
	case models.GameSortComplexity:
		sortColumn = "complexity"
	default:
		sortColumn = "rating_average"
	}

	pageQuery := `SELECT ` + gameColumns + ` FROM games WHERE ` + whereClause +
		` ORDER BY ` + sortColumn + ` ` + order +
		` LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg((f.Page-1)*f.Limit)

	var games []models.GameDB
	err := r.db.SelectContext(ctx, &games, pageQuery, args...)

	logger.Log.Infow("game list",
		"query", strings.Join(strings.Fields(pageQuery), " "),
		"result", len(games),
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

// GameWriteRepository handles catalog write operations
type GameWriteRepository struct {
	db *sqlx.DB
}

func NewGameWriteRepository(db *sqlx.DB) *GameWriteRepository {
	return &GameWriteRepository{db: db}
}

// Save inserts a new catalog entry.
func (r *GameWriteRepository) Save(ctx context.Context, g models.GameDB) error {
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		g.GameID, g.Name, g.Description, g.MinPlayers, g.MaxPlayers,
		g.PlayingTimeMin, g.PlayingTimeMax, g.AgeMin, g.AgeMax,
		g.Categories, g.Mechanics, g.Complexity, g.RatingAverage,
		g.RatingCount, g.Publisher, g.YearPublished,
	)

	logger.Log.Infow("game insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{g.GameID, g.Name},
		"error", err,
	)

	return err
}

// AddRating folds one rating submission into the running average in a
// single UPDATE so concurrent submissions cannot lose counts, and returns
// the updated row. sql.ErrNoRows means the game does not exist.
func (r *GameWriteRepository) AddRating(ctx context.Context, gameID uuid.UUID, rating float64) (*models.GameDB, error) {
	query := `
		UPDATE games
		SET rating_average = (rating_average * rating_count + $2) / (rating_count + 1),
		    rating_count = rating_count + 1,
		    updated_at = NOW()
		WHERE game_id = $1
		RETURNING ` + gameColumns

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, gameID, rating)

	logger.Log.Infow("game rating update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, rating},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &game, nil
}
