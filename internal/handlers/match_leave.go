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

// MatchLeaver defines the interface that the leave service must implement.
type MatchLeaver interface {
	Leave(ctx context.Context, matchID, userID uuid.UUID) (*models.Match, error)
}

// NewMatchLeaveHandler returns an HTTP handler for leaving a match.
// @Summary Leave a match
// @Description Removes the caller from the roster. Freeing a confirmed spot reopens a full match. The host cannot leave; they cancel instead.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchResponse "Updated match"
// @Failure 400 {object} models.ErrorResponse "Invalid match id or caller is not on the roster"
// @Failure 403 {object} models.ErrorResponse "Host cannot leave"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /matches/{id}/leave [post]
func NewMatchLeaveHandler(svc MatchLeaver) http.HandlerFunc {
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

		match, err := svc.Leave(r.Context(), matchID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Match not found"})
			case errors.Is(err, services.ErrHostCannotLeave):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrNotAJoiner):
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
