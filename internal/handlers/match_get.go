package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
)

// MatchGetter defines the interface that the match read service must implement.
type MatchGetter interface {
	Get(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
}

// NewMatchGetHandler returns an HTTP handler for a single match.
// @Summary Get a match
// @Description Returns the match with its roster. Spot availability is derived from the confirmed roster.
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchResponse "Match"
// @Failure 400 {object} models.ErrorResponse "Invalid match id"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func NewMatchGetHandler(svc MatchGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid match id"})
			return
		}

		match, err := svc.Get(r.Context(), matchID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Match not found"})
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
