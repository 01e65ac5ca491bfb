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

// GameRater defines the interface that the rating service must implement.
type GameRater interface {
	Rate(ctx context.Context, gameID uuid.UUID, rating float64) (*models.GameDB, error)
}

// NewGameRateHandler returns an HTTP handler for rating submission.
// @Summary Rate a game
// @Description Folds a 1-10 rating into the game's running average and returns the updated entry.
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param rateGameRequest body models.RateGameRequest true "Rating submission"
// @Success 200 {object} models.GameResponse "Updated game"
// @Failure 400 {object} models.ErrorResponse "Invalid rating"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /games/{id}/rate [post]
func NewGameRateHandler(svc GameRater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "invalid game id",
			})
			return
		}

		var req models.RateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		game, err := svc.Rate(r.Context(), gameID, req.Rating)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Rating must be between 1 and 10",
				})
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
