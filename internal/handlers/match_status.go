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

// MatchStatusSetter defines the interface that the status transition service must implement.
type MatchStatusSetter interface {
	SetStatus(ctx context.Context, matchID, byUserID uuid.UUID, status string) (*models.Match, error)
}

// NewMatchStatusHandler returns an HTTP handler for host-driven status transitions.
// @Summary Set match status
// @Description Starts or completes a match. Host only: open or full matches can move to in-progress, in-progress matches to completed.
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param setMatchStatusRequest body models.SetMatchStatusRequest true "Target status"
// @Success 200 {object} models.MatchResponse "Updated match"
// @Failure 400 {object} models.ErrorResponse "Invalid request or invalid status transition"
// @Failure 403 {object} models.ErrorResponse "Only the host may change status"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /matches/{id}/status [post]
func NewMatchStatusHandler(svc MatchStatusSetter) http.HandlerFunc {
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

		var req models.SetMatchStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid request body"})
			return
		}

		match, err := svc.SetStatus(r.Context(), matchID, userID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Match not found"})
			case errors.Is(err, services.ErrOnlyHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrInvalidTransition):
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
