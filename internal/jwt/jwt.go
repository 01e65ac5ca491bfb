package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators embedded in the "type" claim so an access
// token can never be presented where a refresh token is expected.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// JWT issues and parses access/refresh token pairs. The two token kinds
// are signed with distinct secrets.
type JWT struct {
	AccessSecret  string        // Secret key for signing access tokens
	RefreshSecret string        // Secret key for signing refresh tokens
	AccessExp     time.Duration // Access token lifetime
	RefreshExp    time.Duration // Refresh token lifetime
}

// New creates a new JWT instance
func New(accessSecret, refreshSecret string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessExp:     accessExp,
		RefreshExp:    refreshExp,
	}
}

// GeneratePair creates a signed access/refresh token pair for a user.
func (j *JWT) GeneratePair(ctx context.Context, userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	accessToken, err = j.generate(userID, TypeAccess, j.AccessSecret, j.AccessExp)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = j.generate(userID, TypeRefresh, j.RefreshSecret, j.RefreshExp)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (j *JWT) generate(userID uuid.UUID, tokenType, secret string, exp time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"type":    tokenType,
		"exp":     time.Now().Add(exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccess validates an access token and returns the embedded userID.
func (j *JWT) ParseAccess(ctx context.Context, tokenString string) (uuid.UUID, error) {
	return j.parse(tokenString, TypeAccess, j.AccessSecret)
}

// ParseRefresh validates a refresh token and returns the embedded userID.
func (j *JWT) ParseRefresh(ctx context.Context, tokenString string) (uuid.UUID, error) {
	return j.parse(tokenString, TypeRefresh, j.RefreshSecret)
}

func (j *JWT) parse(tokenString, wantType, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return uuid.Nil, errors.New("invalid token type")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user_id not found in token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user_id format")
	}
	return userID, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
