package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidSchedule     = errors.New("scheduled date must be in the future")
	ErrInvalidCapacity     = errors.New("match must allow at least 2 players")
	ErrAlreadyJoined       = errors.New("user is already in this match")
	ErrMatchFull           = errors.New("match is full")
	ErrMatchNotOpen        = errors.New("match is not accepting new players")
	ErrNotAJoiner          = errors.New("user is not in this match")
	ErrHostCannotLeave     = errors.New("host cannot leave their own match")
	ErrOnlyHost            = errors.New("only the host may perform this action")
	ErrAlreadyCompleted    = errors.New("match is already completed")
	ErrMatchLocked         = errors.New("match is in progress or completed")
	ErrCapacityBelowRoster = errors.New("capacity cannot drop below the confirmed roster")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// MatchReader defines read operations for matches.
type MatchReader interface {
	GetByID(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
	GetForUpdate(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
	List(ctx context.Context, f models.MatchFilter) ([]models.Match, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *string, page, limit int) ([]models.Match, int64, error)
}

// MatchWriter defines write operations for matches and their rosters.
type MatchWriter interface {
	Insert(ctx context.Context, m models.MatchDB, host models.PlayerDB) error
	Update(ctx context.Context, m models.MatchDB) error
	UpdateStatus(ctx context.Context, matchID uuid.UUID, status string) error
	AddPlayer(ctx context.Context, p models.PlayerDB) error
	RemovePlayer(ctx context.Context, matchID, userID uuid.UUID) error
}

// GameGetter checks game references when creating matches.
type GameGetter interface {
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MatchService owns match status transitions and roster mutations and
// publishes lifecycle events to Kafka.
type MatchService struct {
	readRepo    MatchReader
	writeRepo   MatchWriter
	games       GameGetter
	kafkaWriter KafkaWriter
}

// NewMatchService creates a new MatchService.
func NewMatchService(readRepo MatchReader, writeRepo MatchWriter, games GameGetter, kafkaWriter KafkaWriter) *MatchService {
	return &MatchService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		games:       games,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a match lifecycle event to Kafka.
func (s *MatchService) publishEvent(ctx context.Context, eventType string, matchID, userID uuid.UUID, status string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "match_id", matchID, "type", eventType)
		return
	}

	event := models.MatchEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		MatchID:   matchID.String(),
		UserID:    userID.String(),
		Status:    status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal match event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(matchID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish match event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("match event published", "event_id", event.EventID, "type", eventType)
	}
}

// Create validates and stores a new match with the host as its first
// confirmed player.
func (s *MatchService) Create(ctx context.Context, hostID uuid.UUID, req models.CreateMatchRequest) (*models.Match, error) {
	if !req.ScheduledDate.After(time.Now()) {
		return nil, ErrInvalidSchedule
	}
	if req.MaxPlayers < 2 {
		return nil, ErrInvalidCapacity
	}

	game, err := s.games.GetByID(ctx, req.GameID)
	if err != nil {
		logger.Log.Errorw("failed to look up game", "game_id", req.GameID, "err", err)
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	experience := req.Requirements.Experience
	if experience == "" {
		experience = models.ExperienceAny
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = "public"
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	row := models.MatchDB{
		MatchID:         uuid.New(),
		HostID:          hostID,
		GameID:          req.GameID,
		Title:           req.Title,
		Description:     req.Description,
		Venue:           req.Location.Venue,
		Address:         req.Location.Address,
		City:            req.Location.City,
		Latitude:        req.Location.Latitude,
		Longitude:       req.Location.Longitude,
		ScheduledDate:   req.ScheduledDate,
		DurationMinutes: req.DurationMinutes,
		MaxPlayers:      req.MaxPlayers,
		Status:          models.MatchStatusOpen,
		Experience:      experience,
		AgeMin:          req.Requirements.AgeMin,
		Notes:           req.Requirements.Notes,
		Tags:            tags,
		Visibility:      visibility,
	}
	host := models.PlayerDB{
		MatchID:  row.MatchID,
		UserID:   hostID,
		JoinedAt: time.Now(),
		Status:   models.PlayerStatusConfirmed,
	}

	if err := s.writeRepo.Insert(ctx, row, host); err != nil {
		logger.Log.Errorw("failed to insert match", "match_id", row.MatchID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.MatchEventCreated, row.MatchID, hostID, row.Status)

	return &models.Match{MatchDB: row, Players: []models.PlayerDB{host}}, nil
}

// Join appends a confirmed roster entry and flips the match to full when
// the last spot is taken. Runs against the locked match row.
func (s *MatchService) Join(ctx context.Context, matchID, userID uuid.UUID) (*models.Match, error) {
	match, err := s.readRepo.GetForUpdate(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}

	if match.HasPlayer(userID) {
		return nil, ErrAlreadyJoined
	}
	if match.IsFull() {
		return nil, ErrMatchFull
	}
	if match.Status != models.MatchStatusOpen {
		return nil, ErrMatchNotOpen
	}

	player := models.PlayerDB{
		MatchID:  matchID,
		UserID:   userID,
		JoinedAt: time.Now(),
		Status:   models.PlayerStatusConfirmed,
	}
	if err := s.writeRepo.AddPlayer(ctx, player); err != nil {
		logger.Log.Errorw("failed to add player", "match_id", matchID, "user_id", userID, "err", err)
		return nil, err
	}
	match.Players = append(match.Players, player)

	if match.IsFull() {
		if err := s.writeRepo.UpdateStatus(ctx, matchID, models.MatchStatusFull); err != nil {
			logger.Log.Errorw("failed to mark match full", "match_id", matchID, "err", err)
			return nil, err
		}
		match.Status = models.MatchStatusFull
	}

	s.publishEvent(ctx, models.MatchEventPlayerJoined, matchID, userID, match.Status)

	return match, nil
}

// Leave removes a roster entry and reopens a full match when a confirmed
// spot frees up. The host cannot leave; they cancel instead.
func (s *MatchService) Leave(ctx context.Context, matchID, userID uuid.UUID) (*models.Match, error) {
	match, err := s.readRepo.GetForUpdate(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}

	if !match.HasPlayer(userID) {
		return nil, ErrNotAJoiner
	}
	if match.HostID == userID {
		return nil, ErrHostCannotLeave
	}

	if err := s.writeRepo.RemovePlayer(ctx, matchID, userID); err != nil {
		logger.Log.Errorw("failed to remove player", "match_id", matchID, "user_id", userID, "err", err)
		return nil, err
	}

	players := match.Players[:0]
	for _, p := range match.Players {
		if p.UserID != userID {
			players = append(players, p)
		}
	}
	match.Players = players

	if match.Status == models.MatchStatusFull && match.AvailableSpots() > 0 {
		if err := s.writeRepo.UpdateStatus(ctx, matchID, models.MatchStatusOpen); err != nil {
			logger.Log.Errorw("failed to reopen match", "match_id", matchID, "err", err)
			return nil, err
		}
		match.Status = models.MatchStatusOpen
	}

	s.publishEvent(ctx, models.MatchEventPlayerLeft, matchID, userID, match.Status)

	return match, nil
}

// Cancel sets a match to cancelled. Host only; completed matches cannot be
// cancelled. Re-cancelling a cancelled match succeeds silently.
func (s *MatchService) Cancel(ctx context.Context, matchID, byUserID uuid.UUID) error {
	match, err := s.readRepo.GetForUpdate(ctx, matchID)
	if err != nil {
		return err
	}
	if match == nil {
		return ErrMatchNotFound
	}

	if match.HostID != byUserID {
		return ErrOnlyHost
	}
	if match.Status == models.MatchStatusCompleted {
		return ErrAlreadyCompleted
	}

	if err := s.writeRepo.UpdateStatus(ctx, matchID, models.MatchStatusCancelled); err != nil {
		logger.Log.Errorw("failed to cancel match", "match_id", matchID, "err", err)
		return err
	}

	s.publishEvent(ctx, models.MatchEventCancelled, matchID, byUserID, models.MatchStatusCancelled)

	return nil
}

// UpdateMetadata applies the provided fields to a match. Host only; locked
// once the match is in progress or completed. Shrinking capacity below the
// confirmed roster is rejected rather than stranding players.
func (s *MatchService) UpdateMetadata(ctx context.Context, matchID, byUserID uuid.UUID, req models.UpdateMatchRequest) (*models.Match, error) {
	match, err := s.readRepo.GetForUpdate(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}

	if match.HostID != byUserID {
		return nil, ErrOnlyHost
	}
	if match.Status == models.MatchStatusInProgress || match.Status == models.MatchStatusCompleted {
		return nil, ErrMatchLocked
	}

	if req.Title != nil {
		match.Title = *req.Title
	}
	if req.Description != nil {
		match.Description = *req.Description
	}
	if req.Location != nil {
		match.Venue = req.Location.Venue
		match.Address = req.Location.Address
		match.City = req.Location.City
		match.Latitude = req.Location.Latitude
		match.Longitude = req.Location.Longitude
	}
	if req.ScheduledDate != nil {
		if !req.ScheduledDate.After(time.Now()) {
			return nil, ErrInvalidSchedule
		}
		match.ScheduledDate = *req.ScheduledDate
	}
	if req.DurationMinutes != nil {
		match.DurationMinutes = *req.DurationMinutes
	}
	if req.MaxPlayers != nil {
		if *req.MaxPlayers < 2 {
			return nil, ErrInvalidCapacity
		}
		if *req.MaxPlayers < match.ConfirmedCount() {
			return nil, ErrCapacityBelowRoster
		}
		match.MaxPlayers = *req.MaxPlayers
	}
	if req.Requirements != nil {
		match.Experience = req.Requirements.Experience
		match.AgeMin = req.Requirements.AgeMin
		match.Notes = req.Requirements.Notes
	}
	if req.Tags != nil {
		match.Tags = req.Tags
	}
	if req.Visibility != nil {
		match.Visibility = *req.Visibility
	}

	// A capacity change can flip the open/full boundary either way.
	if match.Status == models.MatchStatusOpen && match.IsFull() {
		match.Status = models.MatchStatusFull
	} else if match.Status == models.MatchStatusFull && !match.IsFull() {
		match.Status = models.MatchStatusOpen
	}

	if err := s.writeRepo.Update(ctx, match.MatchDB); err != nil {
		logger.Log.Errorw("failed to update match", "match_id", matchID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.MatchEventUpdated, matchID, byUserID, match.Status)

	return match, nil
}

// SetStatus applies a host-driven status transition. There is no automatic
// trigger: open|full -> in-progress and in-progress -> completed are always
// externally invoked.
func (s *MatchService) SetStatus(ctx context.Context, matchID, byUserID uuid.UUID, status string) (*models.Match, error) {
	match, err := s.readRepo.GetForUpdate(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}

	if match.HostID != byUserID {
		return nil, ErrOnlyHost
	}

	allowed := false
	switch status {
	case models.MatchStatusInProgress:
		allowed = match.Status == models.MatchStatusOpen || match.Status == models.MatchStatusFull
	case models.MatchStatusCompleted:
		allowed = match.Status == models.MatchStatusInProgress
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	if err := s.writeRepo.UpdateStatus(ctx, matchID, status); err != nil {
		logger.Log.Errorw("failed to set match status", "match_id", matchID, "status", status, "err", err)
		return nil, err
	}
	match.Status = status

	s.publishEvent(ctx, models.MatchEventStatusChanged, matchID, byUserID, status)

	return match, nil
}

// Get returns a match aggregate by id.
func (s *MatchService) Get(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	match, err := s.readRepo.GetByID(ctx, matchID)
	if err != nil {
		logger.Log.Errorw("failed to get match", "match_id", matchID, "err", err)
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// List returns open/full matches matching the filter.
func (s *MatchService) List(ctx context.Context, f models.MatchFilter) ([]models.Match, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	matches, total, err := s.readRepo.List(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to list matches", "err", err)
		return nil, 0, err
	}
	return matches, total, nil
}

// ListMine returns matches the user hosts or participates in.
func (s *MatchService) ListMine(ctx context.Context, userID uuid.UUID, status *string, page, limit int) ([]models.Match, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	matches, total, err := s.readRepo.ListByUser(ctx, userID, status, page, limit)
	if err != nil {
		logger.Log.Errorw("failed to list user matches", "user_id", userID, "err", err)
		return nil, 0, err
	}
	return matches, total, nil
}
