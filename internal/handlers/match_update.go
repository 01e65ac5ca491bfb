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

// MatchUpdater defines the interface that the metadata update service must implement.
type MatchUpdater interface {
	UpdateMetadata(ctx context.Context, matchID, byUserID uuid.UUID, req models.UpdateMatchRequest) (*models.Match, error)
}

// NewMatchUpdateHandler returns an HTTP handler for host metadata updates.
// @Summary Update a match
// @Description Applies the provided fields. Host only; rejected once the match is in progress or completed. Capacity cannot drop below the confirmed roster.
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param updateMatchRequest body models.UpdateMatchRequest true "Fields to update"
// @Success 200 {object} models.MatchResponse "Updated match"
// @Failure 400 {object} models.ErrorResponse "Invalid update or match is in progress or completed"
// @Failure 403 {object} models.ErrorResponse "Only the host may update"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /matches/{id} [put]
func NewMatchUpdateHandler(svc MatchUpdater) http.HandlerFunc {
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

		var req models.UpdateMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid request body"})
			return
		}

		match, err := svc.UpdateMetadata(r.Context(), matchID, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Match not found"})
			case errors.Is(err, services.ErrOnlyHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrMatchLocked),
				errors.Is(err, services.ErrInvalidSchedule),
				errors.Is(err, services.ErrInvalidCapacity),
				errors.Is(err, services.ErrCapacityBelowRoster):
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
