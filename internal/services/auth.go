package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users, including the stored
// token pair the auth service owns.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	UpdateTokens(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string) error
	RotateTokens(ctx context.Context, userID uuid.UUID, oldRefreshToken, accessToken, refreshToken string) (bool, error)
	ClearTokens(ctx context.Context, userID uuid.UUID) error
	ClearTokensByRefreshToken(ctx context.Context, refreshToken string) error
}

// TokenPairer defines an interface for issuing and parsing token pairs.
type TokenPairer interface {
	GeneratePair(ctx context.Context, userID uuid.UUID) (accessToken string, refreshToken string, err error)
	ParseRefresh(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthService handles registration, login, and the refresh token lifecycle.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenPairer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenPairer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and issues its first token pair.
func (svc *AuthService) Register(ctx context.Context, username, password string, latitude, longitude *float64) (*models.UserDB, string, string, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, "", "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", "", err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		Latitude:     latitude,
		Longitude:    longitude,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", "", err
	}

	access, refresh, err := svc.issuePair(ctx, user.UserID)
	if err != nil {
		return nil, "", "", err
	}
	return &user, access, refresh, nil
}

// Login authenticates a user and issues a fresh token pair, invalidating
// any previously issued pair.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", "", ErrInvalidCredentials
	}

	return svc.issuePair(ctx, user.UserID)
}

// Refresh rotates a token pair. The presented refresh token must be the
// currently stored one: a stale, rotated-out token fails even while its
// signature is still valid. The conditional store update guarantees that
// of two concurrent rotations exactly one succeeds.
func (svc *AuthService) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	userID, err := svc.jwt.ParseRefresh(ctx, oldRefreshToken)
	if err != nil {
		logger.Log.Errorw("refresh token rejected", "err", err)
		return "", "", ErrInvalidToken
	}

	access, refresh, err := svc.jwt.GeneratePair(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return "", "", err
	}

	rotated, err := svc.writer.RotateTokens(ctx, userID, oldRefreshToken, access, refresh)
	if err != nil {
		logger.Log.Errorw("failed to rotate tokens", "user_id", userID, "err", err)
		return "", "", err
	}
	if !rotated {
		logger.Log.Errorw("stale or revoked refresh token presented", "user_id", userID)
		return "", "", ErrInvalidToken
	}

	return access, refresh, nil
}

// Logout revokes the pair of whichever user holds the presented refresh
// token. A token that matches no user is not an error.
func (svc *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := svc.writer.ClearTokensByRefreshToken(ctx, refreshToken); err != nil {
		logger.Log.Errorw("failed to clear tokens by refresh token", "err", err)
		return err
	}
	return nil
}

// LogoutAll revokes the stored pair for a user id.
func (svc *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.ClearTokens(ctx, userID); err != nil {
		logger.Log.Errorw("failed to clear tokens", "user_id", userID, "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) issuePair(ctx context.Context, userID uuid.UUID) (string, string, error) {
	access, refresh, err := svc.jwt.GeneratePair(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return "", "", err
	}

	if err := svc.writer.UpdateTokens(ctx, userID, access, refresh); err != nil {
		logger.Log.Errorw("failed to persist token pair", "user_id", userID, "err", err)
		return "", "", err
	}

	return access, refresh, nil
}
