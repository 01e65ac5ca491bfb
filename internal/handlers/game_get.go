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

// GameGetter defines the interface that the catalog read service must implement.
type GameGetter interface {
	Get(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
}

// NewGameGetHandler returns an HTTP handler for a single catalog entry.
// @Summary Get a game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GameResponse "Game"
// @Failure 400 {object} models.ErrorResponse "Invalid game id"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /games/{id} [get]
func NewGameGetHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "invalid game id",
			})
			return
		}

		game, err := svc.Get(r.Context(), gameID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Game not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewGameResponse(game))
	}
}
