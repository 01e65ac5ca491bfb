package models

import (
	"time"

	"github.com/google/uuid"
)

// CreateGameRequest represents the JSON body for adding a catalog entry
// swagger:model CreateGameRequest
type CreateGameRequest struct {
	// required: true
	// example: Catan
	Name string `json:"name"`

	Description string `json:"description"`

	// required: true
	// example: 3
	MinPlayers int `json:"min_players"`

	// required: true
	// example: 4
	MaxPlayers int `json:"max_players"`

	// Minutes
	// example: 60
	PlayingTimeMin int `json:"playing_time_min"`

	// Minutes
	// example: 120
	PlayingTimeMax int `json:"playing_time_max"`

	// example: 10
	AgeMin int `json:"age_min"`

	// example: 100
	AgeMax int `json:"age_max"`

	Categories []string `json:"categories"`
	Mechanics  []string `json:"mechanics"`

	// 1-5
	// required: true
	// example: 2
	Complexity int `json:"complexity"`

	// example: Kosmos
	Publisher string `json:"publisher"`

	// example: 1995
	YearPublished int `json:"year_published"`
}

// RateGameRequest represents the JSON body for a rating submission
// swagger:model RateGameRequest
type RateGameRequest struct {
	// 1-10
	// required: true
	// example: 8
	Rating float64 `json:"rating"`
}

// GameResponse is the public view of a catalog entry
// swagger:model GameResponse
type GameResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	MinPlayers     int       `json:"min_players"`
	MaxPlayers     int       `json:"max_players"`
	PlayingTimeMin int       `json:"playing_time_min"`
	PlayingTimeMax int       `json:"playing_time_max"`
	AgeMin         int       `json:"age_min"`
	AgeMax         int       `json:"age_max"`
	Categories     []string  `json:"categories"`
	Mechanics      []string  `json:"mechanics"`
	Complexity     int       `json:"complexity"`
	RatingAverage  float64   `json:"rating_average"`
	RatingCount    int       `json:"rating_count"`
	Publisher      string    `json:"publisher"`
	YearPublished  int       `json:"year_published"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewGameResponse converts a catalog row into its public view.
func NewGameResponse(g *GameDB) GameResponse {
	return GameResponse{
		ID:             g.GameID,
		Name:           g.Name,
		Description:    g.Description,
		MinPlayers:     g.MinPlayers,
		MaxPlayers:     g.MaxPlayers,
		PlayingTimeMin: g.PlayingTimeMin,
		PlayingTimeMax: g.PlayingTimeMax,
		AgeMin:         g.AgeMin,
		AgeMax:         g.AgeMax,
		Categories:     g.Categories,
		Mechanics:      g.Mechanics,
		Complexity:     g.Complexity,
		RatingAverage:  g.RatingAverage,
		RatingCount:    g.RatingCount,
		Publisher:      g.Publisher,
		YearPublished:  g.YearPublished,
		CreatedAt:      g.CreatedAt,
	}
}

// GameListResponse is a paginated catalog listing
// swagger:model GameListResponse
type GameListResponse struct {
	Games      []GameResponse `json:"games"`
	Pagination Pagination     `json:"pagination"`
}
