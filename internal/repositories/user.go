package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

const userColumns = `
	user_id, username, password_hash, bio, latitude, longitude,
	access_token, refresh_token, created_at, updated_at
`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListNearby returns users with a stored coordinate within radiusKm of the
// given point, nearest first, excluding the caller. Users without a home
// coordinate never appear.
func (r *UserReadRepository) ListNearby(ctx context.Context, excludeUserID uuid.UUID, lat, lon, radiusKm float64, limit int) ([]models.UserDB, error) {
	distance := fmt.Sprintf(
		"2 * 6371 * asin(sqrt(power(sin(radians(latitude - %[1]s) / 2), 2) + cos(radians(%[1]s)) * cos(radians(latitude)) * power(sin(radians(longitude - %[2]s) / 2), 2)))",
		"$2", "$3",
	)

	query := `SELECT ` + userColumns + ` FROM users
		WHERE user_id <> $1
		  AND latitude IS NOT NULL AND longitude IS NOT NULL
		  AND ` + distance + ` <= $4
		ORDER BY ` + distance + ` ASC
		LIMIT $5`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, excludeUserID, lat, lon, radiusKm, limit)

	logger.Log.Infow("user nearby query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{excludeUserID, lat, lon, radiusKm, limit},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Search returns users whose username or bio matches the query, case
// insensitively.
func (r *UserReadRepository) Search(ctx context.Context, q string, limit int) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE username ILIKE $1 OR bio ILIKE $1
		ORDER BY username ASC
		LIMIT $2`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, "%"+q+"%", limit)

	logger.Log.Infow("user search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{q, limit},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations, including the token
// pair storage the auth service rotates.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	query := `
		INSERT INTO users (user_id, username, password_hash, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{user.UserID, user.Username, user.PasswordHash, user.Latitude, user.Longitude}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username},
		"error", err,
	)

	return err
}

// UpdateProfile applies the non-nil profile fields. COALESCE keeps the
// stored value for every field the caller omitted.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio *string, latitude, longitude *float64) error {
	query := `
		UPDATE users
		SET username = COALESCE($2, username),
		    bio = COALESCE($3, bio),
		    latitude = COALESCE($4, latitude),
		    longitude = COALESCE($5, longitude),
		    updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, username, bio, latitude, longitude)

	logger.Log.Infow("user profile update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// UpdateTokens unconditionally replaces the stored token pair. Used on
// login and registration, where any previous pair is invalidated.
func (r *UserWriteRepository) UpdateTokens(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string) error {
	query := `
		UPDATE users
		SET access_token = $2, refresh_token = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, accessToken, refreshToken)

	logger.Log.Infow("user tokens update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// RotateTokens replaces the stored pair only while the stored refresh token
// still equals oldRefreshToken. The conditional update makes rotation atomic:
// of two concurrent rotations presenting the same token exactly one sees a
// row affected. Returns false when the token was already rotated out or revoked.
func (r *UserWriteRepository) RotateTokens(ctx context.Context, userID uuid.UUID, oldRefreshToken, accessToken, refreshToken string) (bool, error) {
	query := `
		UPDATE users
		SET access_token = $3, refresh_token = $4, updated_at = NOW()
		WHERE user_id = $1 AND refresh_token = $2
	`

	res, err := r.db.ExecContext(ctx, query, userID, oldRefreshToken, accessToken, refreshToken)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user tokens rotate",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ClearTokens revokes the stored pair for a user.
func (r *UserWriteRepository) ClearTokens(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET access_token = NULL, refresh_token = NULL, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("user tokens clear",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// ClearTokensByRefreshToken revokes the pair of whichever user currently
// holds the given refresh token. No matching row is not an error, which
// makes logout idempotent.
func (r *UserWriteRepository) ClearTokensByRefreshToken(ctx context.Context, refreshToken string) error {
	query := `
		UPDATE users
		SET access_token = NULL, refresh_token = NULL, updated_at = NOW()
		WHERE refresh_token = $1
	`

	res, err := r.db.ExecContext(ctx, query, refreshToken)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user tokens clear by refresh token",
		"query", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	return err
}
