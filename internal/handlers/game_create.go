package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
)

// GameCreator defines the interface that the catalog creation service must implement.
type GameCreator interface {
	Create(ctx context.Context, req models.CreateGameRequest) (*models.GameDB, error)
}

// NewGameCreateHandler returns an HTTP handler for adding a catalog entry.
// @Summary Add a game to the catalog
// @Description Creates a new catalog entry. Game names are unique.
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createGameRequest body models.CreateGameRequest true "Game to add"
// @Success 201 {object} models.GameResponse "Game created"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "Game already exists"
// @Router /games [post]
func NewGameCreateHandler(svc GameCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateGameRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Name == "" || req.MinPlayers < 1 || req.MaxPlayers < req.MinPlayers {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "name is required and player counts must be a valid range",
			})
			return
		}

		game, err := svc.Create(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Game already exists",
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.NewGameResponse(game))
	}
}
