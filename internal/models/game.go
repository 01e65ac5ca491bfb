package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GameDB represents a catalog entry in the database
type GameDB struct {
	GameID         uuid.UUID      `json:"game_id" db:"game_id"`
	Name           string         `json:"name" db:"name"` // Unique
	Description    string         `json:"description" db:"description"`
	MinPlayers     int            `json:"min_players" db:"min_players"`
	MaxPlayers     int            `json:"max_players" db:"max_players"`
	PlayingTimeMin int            `json:"playing_time_min" db:"playing_time_min"` // Minutes
	PlayingTimeMax int            `json:"playing_time_max" db:"playing_time_max"` // Minutes
	AgeMin         int            `json:"age_min" db:"age_min"`
	AgeMax         int            `json:"age_max" db:"age_max"`
	Categories     pq.StringArray `json:"categories" db:"categories"`
	Mechanics      pq.StringArray `json:"mechanics" db:"mechanics"`
	Complexity     int            `json:"complexity" db:"complexity"` // 1-5
	RatingAverage  float64        `json:"rating_average" db:"rating_average"`
	RatingCount    int            `json:"rating_count" db:"rating_count"`
	Publisher      string         `json:"publisher" db:"publisher"`
	YearPublished  int            `json:"year_published" db:"year_published"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// Game sort keys accepted by the catalog listing.
const (
	GameSortName       = "name"
	GameSortRating     = "rating"
	GameSortYear       = "year"
	GameSortComplexity = "complexity"
)

// GameFilter describes the catalog listing query.
type GameFilter struct {
	Search     *string
	Categories []string
	Mechanics  []string
	MinPlayers *int
	MaxPlayers *int
	Complexity *int
	MinRating  *float64
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}
