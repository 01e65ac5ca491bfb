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

const matchColumns = `
	match_id, host_id, game_id, title, description, venue, address, city,
	latitude, longitude, scheduled_date, duration_minutes, max_players,
	status, experience, age_min, notes, tags, visibility, created_at, updated_at
`

// MatchReadRepository handles match read operations, including the locked
// read that serializes roster mutations.
type MatchReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMatchReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MatchReadRepository {
	return &MatchReadRepository{db: db, txGetter: txGetter}
}

func (r *MatchReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the match aggregate, or nil if absent.
func (r *MatchReadRepository) GetByID(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	return r.get(ctx, matchID, false)
}

// GetForUpdate returns the match aggregate with the match row locked.
// Must run inside the per-request transaction: the row lock is what keeps
// two concurrent joins from both taking the last spot.
func (r *MatchReadRepository) GetForUpdate(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	return r.get(ctx, matchID, true)
}

func (r *MatchReadRepository) get(ctx context.Context, matchID uuid.UUID, forUpdate bool) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE match_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	executor := r.executor(ctx)

	var match models.Match
	err := sqlx.GetContext(ctx, executor, &match.MatchDB, query, matchID)

	logger.Log.Infow("match query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const playersQuery = `
		SELECT match_id, user_id, joined_at, status
		FROM match_players
		WHERE match_id = $1
		ORDER BY joined_at
	`
	if err := sqlx.SelectContext(ctx, executor, &match.Players, playersQuery, matchID); err != nil {
		return nil, err
	}

	return &match, nil
}

// List returns open/full matches matching the filter, scheduled soonest
// first, with the total count for pagination. The proximity predicate is
// the haversine great-circle distance computed in SQL.
func (r *MatchReadRepository) List(ctx context.Context, f models.MatchFilter) ([]models.Match, int64, error) {
	where := []string{"status IN ('open', 'full')"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.GameID != nil {
		where = append(where, "game_id = "+arg(*f.GameID))
	}
	if f.DateFrom != nil {
		where = append(where, "scheduled_date >= "+arg(*f.DateFrom))
	}
	if f.DateTo != nil {
		where = append(where, "scheduled_date <= "+arg(*f.DateTo))
	}
	if f.MaxPlayers != nil {
		where = append(where, "max_players <= "+arg(*f.MaxPlayers))
	}
	if f.Experience != nil && *f.Experience != models.ExperienceAny {
		where = append(where, "experience = "+arg(*f.Experience))
	}
	if len(f.Tags) > 0 {
		where = append(where, "tags && "+arg(pq.Array(f.Tags)))
	}
	if f.Latitude != nil && f.Longitude != nil {
		lat := arg(*f.Latitude)
		lon := arg(*f.Longitude)
		dist := arg(f.MaxDistanceKm)
		where = append(where, fmt.Sprintf(
			"2 * 6371 * asin(sqrt(power(sin(radians(latitude - %[1]s) / 2), 2) + cos(radians(%[1]s)) * cos(radians(latitude)) * power(sin(radians(longitude - %[2]s) / 2), 2))) <= %[3]s",
			lat, lon, dist,
		))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(1) FROM matches WHERE ` + whereClause
	var total int64
	if err := sqlx.GetContext(ctx, r.db, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	pageQuery := `SELECT ` + matchColumns + ` FROM matches WHERE ` + whereClause +
		` ORDER BY scheduled_date ASC LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg((f.Page-1)*f.Limit)

	var rows []models.MatchDB
	err := sqlx.SelectContext(ctx, r.db, &rows, pageQuery, args...)

	logger.Log.Infow("match list",
		"query", strings.Join(strings.Fields(pageQuery), " "),
		"result", len(rows),
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	matches, err := r.attachPlayers(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// ListByUser returns matches the user hosts or has a roster entry in.
func (r *MatchReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *string, page, limit int) ([]models.Match, int64, error) {
	where := `(host_id = $1 OR match_id IN (SELECT match_id FROM match_players WHERE user_id = $1))`
	args := []any{userID}
	if status != nil {
		args = append(args, *status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	countQuery := `SELECT COUNT(1) FROM matches WHERE ` + where
	var total int64
	if err := sqlx.GetContext(ctx, r.db, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, (page-1)*limit)
	pageQuery := fmt.Sprintf(
		`SELECT %s FROM matches WHERE %s ORDER BY scheduled_date ASC LIMIT $%d OFFSET $%d`,
		matchColumns, where, len(args)-1, len(args),
	)

	var rows []models.MatchDB
	err := sqlx.SelectContext(ctx, r.db, &rows, pageQuery, args...)

	logger.Log.Infow("match list by user",
		"query", strings.Join(strings.Fields(pageQuery), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	matches, err := r.attachPlayers(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *MatchReadRepository) attachPlayers(ctx context.Context, rows []models.MatchDB) ([]models.Match, error) {
	matches := make([]models.Match, len(rows))
	if len(rows) == 0 {
		return matches, nil
	}

	ids := make([]string, len(rows))
	for i, m := range rows {
		matches[i] = models.Match{MatchDB: m, Players: []models.PlayerDB{}}
		ids[i] = m.MatchID.String()
	}

	const query = `
		SELECT match_id, user_id, joined_at, status
		FROM match_players
		WHERE match_id = ANY($1::uuid[])
		ORDER BY joined_at
	`
	var players []models.PlayerDB
	if err := sqlx.SelectContext(ctx, r.db, &players, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	byMatch := make(map[uuid.UUID][]models.PlayerDB, len(rows))
	for _, p := range players {
		byMatch[p.MatchID] = append(byMatch[p.MatchID], p)
	}
	for i := range matches {
		if ps, ok := byMatch[matches[i].MatchID]; ok {
			matches[i].Players = ps
		}
	}
	return matches, nil
}

// MatchWriteRepository handles match and roster write operations. Writes pick
// up the per-request transaction from the context so a roster mutation and
// its status flip commit as one unit.
type MatchWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMatchWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MatchWriteRepository {
	return &MatchWriteRepository{db: db, txGetter: txGetter}
}

func (r *MatchWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert stores a new match together with its host roster entry.
func (r *MatchWriteRepository) Insert(ctx context.Context, m models.MatchDB, host models.PlayerDB) error {
	query := `
		INSERT INTO matches (` + matchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
	`
	executor := r.executor(ctx)

	_, err := executor.ExecContext(ctx, query,
		m.MatchID, m.HostID, m.GameID, m.Title, m.Description,
		m.Venue, m.Address, m.City, m.Latitude, m.Longitude,
		m.ScheduledDate, m.DurationMinutes, m.MaxPlayers, m.Status,
		m.Experience, m.AgeMin, m.Notes, m.Tags, m.Visibility,
	)

	logger.Log.Infow("match insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{m.MatchID, m.HostID, m.GameID},
		"error", err,
	)

	if err != nil {
		return err
	}

	return r.addPlayer(ctx, executor, host)
}

// Update replaces the mutable metadata and status of a match.
func (r *MatchWriteRepository) Update(ctx context.Context, m models.MatchDB) error {
	query := `
		UPDATE matches
		SET title = $2, description = $3, venue = $4, address = $5, city = $6,
		    latitude = $7, longitude = $8, scheduled_date = $9,
		    duration_minutes = $10, max_players = $11, status = $12,
		    experience = $13, age_min = $14, notes = $15, tags = $16,
		    visibility = $17, updated_at = NOW()
		WHERE match_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		m.MatchID, m.Title, m.Description, m.Venue, m.Address, m.City,
		m.Latitude, m.Longitude, m.ScheduledDate, m.DurationMinutes,
		m.MaxPlayers, m.Status, m.Experience, m.AgeMin, m.Notes, m.Tags,
		m.Visibility,
	)

	logger.Log.Infow("match update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{m.MatchID},
		"error", err,
	)

	return err
}

// UpdateStatus sets the match status.
func (r *MatchWriteRepository) UpdateStatus(ctx context.Context, matchID uuid.UUID, status string) error {
	query := `
		UPDATE matches
		SET status = $2, updated_at = NOW()
		WHERE match_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, matchID, status)

	logger.Log.Infow("match status update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID, status},
		"error", err,
	)

	return err
}

// AddPlayer appends a roster entry.
func (r *MatchWriteRepository) AddPlayer(ctx context.Context, p models.PlayerDB) error {
	return r.addPlayer(ctx, r.executor(ctx), p)
}

func (r *MatchWriteRepository) addPlayer(ctx context.Context, executor sqlx.ExtContext, p models.PlayerDB) error {
	query := `
		INSERT INTO match_players (match_id, user_id, joined_at, status)
		VALUES ($1, $2, $3, $4)
	`

	_, err := executor.ExecContext(ctx, query, p.MatchID, p.UserID, p.JoinedAt, p.Status)

	logger.Log.Infow("roster insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{p.MatchID, p.UserID, p.Status},
		"error", err,
	)

	return err
}

// RemovePlayer deletes a roster entry.
func (r *MatchWriteRepository) RemovePlayer(ctx context.Context, matchID, userID uuid.UUID) error {
	query := `
		DELETE FROM match_players
		WHERE match_id = $1 AND user_id = $2
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, matchID, userID)

	logger.Log.Infow("roster delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID, userID},
		"error", err,
	)

	return err
}
