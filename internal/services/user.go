package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// Error variables
var (
	ErrInvalidCoordinates = errors.New("latitude must be in [-90, 90] and longitude in [-180, 180]")
	ErrNoSearchQuery      = errors.New("search query is required")
)

// ProfileReader defines read operations for user profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	ListNearby(ctx context.Context, excludeUserID uuid.UUID, lat, lon, radiusKm float64, limit int) ([]models.UserDB, error)
	Search(ctx context.Context, q string, limit int) ([]models.UserDB, error)
}

// ProfileWriter defines write operations for user profiles.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio *string, latitude, longitude *float64) error
}

// UserService serves public profiles, profile updates, and the proximity
// and search listings.
type UserService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader ProfileReader, writer ProfileWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// GetProfile returns the profile for a user id.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields and returns the updated
// row. A username change must not collide with another user.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.UserDB, error) {
	if req.Username != nil {
		existing, err := s.reader.GetByUsername(ctx, *req.Username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return nil, err
		}
		if existing != nil && existing.UserID != userID {
			return nil, ErrUserAlreadyExists
		}
	}
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return nil, ErrInvalidCoordinates
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return nil, ErrInvalidCoordinates
	}

	if err := s.writer.UpdateProfile(ctx, userID, req.Username, req.Bio, req.Latitude, req.Longitude); err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to reload user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Nearby returns users within radiusKm of the given point, nearest first,
// excluding the caller.
func (s *UserService) Nearby(ctx context.Context, userID uuid.UUID, lat, lon, radiusKm float64, limit int) ([]models.UserDB, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		radiusKm = 10
	}
	if limit < 1 {
		limit = 20
	}
	users, err := s.reader.ListNearby(ctx, userID, lat, lon, radiusKm, limit)
	if err != nil {
		logger.Log.Errorw("failed to list nearby users", "err", err)
		return nil, err
	}
	return users, nil
}

// Search returns users matching the query by username or bio.
func (s *UserService) Search(ctx context.Context, q string, limit int) ([]models.UserDB, error) {
	if q == "" {
		return nil, ErrNoSearchQuery
	}
	if limit < 1 {
		limit = 10
	}
	users, err := s.reader.Search(ctx, q, limit)
	if err != nil {
		logger.Log.Errorw("failed to search users", "q", q, "err", err)
		return nil, err
	}
	return users, nil
}
