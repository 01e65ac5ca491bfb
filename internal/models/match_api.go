package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchLocation is the venue part of a match payload
// swagger:model MatchLocation
type MatchLocation struct {
	// required: true
	// example: Board & Brew
	Venue string `json:"venue"`

	// required: true
	// example: 12 Main St
	Address string `json:"address"`

	// required: true
	// example: Moscow
	City string `json:"city"`

	// required: true
	// example: 55.7558
	Latitude float64 `json:"latitude"`

	// required: true
	// example: 37.6173
	Longitude float64 `json:"longitude"`
}

// MatchRequirements describes who a match is meant for
// swagger:model MatchRequirements
type MatchRequirements struct {
	// example: any
	Experience string `json:"experience"`

	// example: 18
	AgeMin int `json:"age_min"`

	// example: bring snacks
	Notes string `json:"notes"`
}

// CreateMatchRequest represents the JSON body for creating a match
// swagger:model CreateMatchRequest
type CreateMatchRequest struct {
	// required: true
	GameID uuid.UUID `json:"game_id"`

	// required: true
	// example: Friday night Catan
	Title string `json:"title"`

	Description string `json:"description"`

	// required: true
	Location MatchLocation `json:"location"`

	// required: true
	ScheduledDate time.Time `json:"scheduled_date"`

	// Minutes, 30-480
	// required: true
	// example: 120
	DurationMinutes int `json:"duration_minutes"`

	// Capacity including the host
	// required: true
	// example: 4
	MaxPlayers int `json:"max_players"`

	Requirements MatchRequirements `json:"requirements"`

	Tags []string `json:"tags"`

	// example: public
	Visibility string `json:"visibility"`
}

// UpdateMatchRequest represents the JSON body for a host metadata update.
// Only the provided fields are applied.
// swagger:model UpdateMatchRequest
type UpdateMatchRequest struct {
	Title           *string            `json:"title,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Location        *MatchLocation     `json:"location,omitempty"`
	ScheduledDate   *time.Time         `json:"scheduled_date,omitempty"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	MaxPlayers      *int               `json:"max_players,omitempty"`
	Requirements    *MatchRequirements `json:"requirements,omitempty"`
	Tags            []string           `json:"tags,omitempty"`
	Visibility      *string            `json:"visibility,omitempty"`
}

// SetMatchStatusRequest represents the JSON body for a host-driven status change
// swagger:model SetMatchStatusRequest
type SetMatchStatusRequest struct {
	// example: in-progress
	Status string `json:"status"`
}

// PlayerResponse is a roster entry in a match payload
// swagger:model PlayerResponse
type PlayerResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
	// example: confirmed
	Status string `json:"status"`
}

// MatchResponse is the public view of a match
// swagger:model MatchResponse
type MatchResponse struct {
	ID              uuid.UUID         `json:"id"`
	HostID          uuid.UUID         `json:"host_id"`
	GameID          uuid.UUID         `json:"game_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Location        MatchLocation     `json:"location"`
	ScheduledDate   time.Time         `json:"scheduled_date"`
	DurationMinutes int               `json:"duration_minutes"`
	MaxPlayers      int               `json:"max_players"`
	Status          string            `json:"status"`
	Requirements    MatchRequirements `json:"requirements"`
	Tags            []string          `json:"tags"`
	Visibility      string            `json:"visibility"`
	Players         []PlayerResponse  `json:"players"`
	AvailableSpots  int               `json:"available_spots"`
	IsFull          bool              `json:"is_full"`

	// Distance from the coordinates in the listing query, when given
	DistanceKm *float64  `json:"distance_km,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewMatchResponse converts a match aggregate into its public view.
// Spot availability is recomputed from the roster here, never read from storage.
func NewMatchResponse(m *Match) MatchResponse {
	players := make([]PlayerResponse, 0, len(m.Players))
	for _, p := range m.Players {
		players = append(players, PlayerResponse{
			UserID:   p.UserID,
			JoinedAt: p.JoinedAt,
			Status:   p.Status,
		})
	}

	return MatchResponse{
		ID:          m.MatchID,
		HostID:      m.HostID,
		GameID:      m.GameID,
		Title:       m.Title,
		Description: m.Description,
		Location: MatchLocation{
			Venue:     m.Venue,
			Address:   m.Address,
			City:      m.City,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		},
		ScheduledDate:   m.ScheduledDate,
		DurationMinutes: m.DurationMinutes,
		MaxPlayers:      m.MaxPlayers,
		Status:          m.Status,
		Requirements: MatchRequirements{
			Experience: m.Experience,
			AgeMin:     m.AgeMin,
			Notes:      m.Notes,
		},
		Tags:           m.Tags,
		Visibility:     m.Visibility,
		Players:        players,
		AvailableSpots: m.AvailableSpots(),
		IsFull:         m.IsFull(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// MatchListResponse is a paginated match listing
// swagger:model MatchListResponse
type MatchListResponse struct {
	Matches    []MatchResponse `json:"matches"`
	Pagination Pagination      `json:"pagination"`
}
