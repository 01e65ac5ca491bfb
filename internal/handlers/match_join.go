package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
)

// MatchJoiner defines the interface that the join service must implement.
type MatchJoiner interface {
	Join(ctx context.Context, matchID, userID uuid.UUID) (*models.Match, error)
}

// NewMatchJoinHandler returns an HTTP handler for joining a match.
// @Summary Join a match
// @Description Adds the caller to the roster. Taking the last spot flips the match to full.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchResponse "Updated match"
// @Failure 400 {object} models.ErrorResponse "Invalid match id, already joined, match full, or match not open"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /matches/{id}/join [post]
func NewMatchJoinHandler(svc MatchJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		matchID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid match id"})
			return
		}

		match, err := svc.Join(r.Context(), matchID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Match not found"})
			case errors.Is(err, services.ErrAlreadyJoined),
				errors.Is(err, services.ErrMatchFull),
				errors.Is(err, services.ErrMatchNotOpen):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewMatchResponse(match))
	}
}
