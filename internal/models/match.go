package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Match statuses
const (
	MatchStatusOpen       = "open"
	MatchStatusFull       = "full"
	MatchStatusInProgress = "in-progress"
	MatchStatusCompleted  = "completed"
	MatchStatusCancelled  = "cancelled"
)

// Roster entry statuses
const (
	PlayerStatusConfirmed = "confirmed"
	PlayerStatusPending   = "pending"
	PlayerStatusCancelled = "cancelled"
)

// Experience tiers
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceAny          = "any"
)

// MatchDB represents a match row in the database
type MatchDB struct {
	MatchID         uuid.UUID      `json:"match_id" db:"match_id"`
	HostID          uuid.UUID      `json:"host_id" db:"host_id"`                 // Immutable after creation
	GameID          uuid.UUID      `json:"game_id" db:"game_id"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	Venue           string         `json:"venue" db:"venue"`
	Address         string         `json:"address" db:"address"`
	City            string         `json:"city" db:"city"`
	Latitude        float64        `json:"latitude" db:"latitude"`
	Longitude       float64        `json:"longitude" db:"longitude"`
	ScheduledDate   time.Time      `json:"scheduled_date" db:"scheduled_date"`   // Strictly in the future at creation/update
	DurationMinutes int            `json:"duration_minutes" db:"duration_minutes"`
	MaxPlayers      int            `json:"max_players" db:"max_players"`         // Capacity, >= 2
	Status          string         `json:"status" db:"status"`
	Experience      string         `json:"experience" db:"experience"`
	AgeMin          int            `json:"age_min" db:"age_min"`
	Notes           string         `json:"notes" db:"notes"`
	Tags            pq.StringArray `json:"tags" db:"tags"`
	Visibility      string         `json:"visibility" db:"visibility"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// PlayerDB represents a roster entry scoped to exactly one match
type PlayerDB struct {
	MatchID  uuid.UUID `json:"match_id" db:"match_id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
	Status   string    `json:"status" db:"status"`
}

// Match is a match row together with its roster.
// Spot availability is always derived from the roster, never stored.
type Match struct {
	MatchDB
	Players []PlayerDB `json:"players"`
}

// ConfirmedCount returns the number of roster entries counted toward capacity.
func (m *Match) ConfirmedCount() int {
	n := 0
	for _, p := range m.Players {
		if p.Status == PlayerStatusConfirmed {
			n++
		}
	}
	return n
}

// AvailableSpots returns capacity minus the confirmed roster count.
func (m *Match) AvailableSpots() int {
	return m.MaxPlayers - m.ConfirmedCount()
}

// IsFull reports whether no confirmed spot remains.
func (m *Match) IsFull() bool {
	return m.AvailableSpots() <= 0
}

// HasPlayer reports whether the user has a roster entry in this match.
func (m *Match) HasPlayer(userID uuid.UUID) bool {
	for _, p := range m.Players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// MatchFilter describes the public match listing query.
type MatchFilter struct {
	GameID        *uuid.UUID
	Latitude      *float64
	Longitude     *float64
	MaxDistanceKm float64
	DateFrom      *time.Time
	DateTo        *time.Time
	MaxPlayers    *int
	Experience    *string
	Tags          []string
	Page          int
	Limit         int
}
