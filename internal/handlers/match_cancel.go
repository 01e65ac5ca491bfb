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

// MatchCanceller defines the interface that the cancellation service must implement.
type MatchCanceller interface {
	Cancel(ctx context.Context, matchID, byUserID uuid.UUID) error
}

// NewMatchCancelHandler returns an HTTP handler for cancelling a match.
// @Summary Cancel a match
// @Description Sets the match to cancelled. Host only. Completed matches cannot be cancelled; re-cancelling succeeds.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} models.MessageResponse "Match cancelled"
// @Failure 400 {object} models.ErrorResponse "Invalid match id or match is already completed"
// @Failure 403 {object} models.ErrorResponse "Only the host may cancel"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /matches/{id} [delete]
func NewMatchCancelHandler(svc MatchCanceller) http.HandlerFunc {
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

		if err := svc.Cancel(r.Context(), matchID, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Match not found"})
			case errors.Is(err, services.ErrOnlyHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrAlreadyCompleted):
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
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Match cancelled"})
	}
}
