package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password
	Bio          string    `json:"bio" db:"bio"`                     // Free-form profile text
	Latitude     *float64  `json:"latitude" db:"latitude"`           // Optional home coordinate
	Longitude    *float64  `json:"longitude" db:"longitude"`         // Optional home coordinate
	AccessToken  *string   `json:"-" db:"access_token"`              // Currently issued access token, nil after logout
	RefreshToken *string   `json:"-" db:"refresh_token"`             // Currently issued refresh token, nil after logout
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// UpdateProfileRequest represents the JSON body for a profile update.
// Only the provided fields are applied.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username  *string  `json:"username,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// UserResponse is the public view of a user returned by the API
// swagger:model UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a user row into its public view.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Bio:       u.Bio,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		CreatedAt: u.CreatedAt,
	}
}

// NearbyUserResponse is a user in a proximity listing
// swagger:model NearbyUserResponse
type NearbyUserResponse struct {
	UserResponse
	DistanceKm float64 `json:"distance_km"`
}
