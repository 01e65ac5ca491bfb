package models

// Match lifecycle event types published to Kafka.
const (
	MatchEventCreated       = "match_created"
	MatchEventUpdated       = "match_updated"
	MatchEventPlayerJoined  = "player_joined"
	MatchEventPlayerLeft    = "player_left"
	MatchEventCancelled     = "match_cancelled"
	MatchEventStatusChanged = "status_changed"
)

// MatchEvent records a match lifecycle transition for downstream consumers.
type MatchEvent struct {
	EventID   string `json:"event_id" bson:"event_id"`     // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp" bson:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Type      string `json:"type" bson:"type"`             // Type is one of the MatchEvent* constants.
	MatchID   string `json:"match_id" bson:"match_id"`     // MatchID identifies the affected match.
	UserID    string `json:"user_id" bson:"user_id"`       // UserID is the actor who triggered the transition.
	Status    string `json:"status" bson:"status"`         // Status is the match status after the transition.
}
