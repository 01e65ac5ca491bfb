package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
)

// MatchCreator defines the interface that the match creation service must implement.
type MatchCreator interface {
	Create(ctx context.Context, hostID uuid.UUID, req models.CreateMatchRequest) (*models.Match, error)
}

// NewMatchCreateHandler returns an HTTP handler for creating a match.
// @Summary Create a match
// @Description Creates a match with the caller as host and first confirmed player. The scheduled date must be in the future.
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createMatchRequest body models.CreateMatchRequest true "Match to create"
// @Success 201 {object} models.MatchResponse "Match created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /matches [post]
func NewMatchCreateHandler(svc MatchCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.CreateMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid request body"})
			return
		}

		if req.Title == "" || req.GameID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "title and game_id are required"})
			return
		}

		match, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSchedule),
				errors.Is(err, services.ErrInvalidCapacity):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Game not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.NewMatchResponse(match))
	}
}
