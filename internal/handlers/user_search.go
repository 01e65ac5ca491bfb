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

// UserSearcher defines the interface that the user search service must implement.
type UserSearcher interface {
	Search(ctx context.Context, q string, limit int) ([]models.UserDB, error)
}

// NewUserSearchHandler returns an HTTP handler for searching users.
// @Summary Search users
// @Description Matches users by username or bio, case insensitively.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param limit query int false "Result cap, default 10"
// @Success 200 {array} models.UserResponse "Matching users"
// @Failure 400 {object} models.ErrorResponse "Missing query"
// @Router /users/search [get]
func NewUserSearchHandler(svc UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		users, err := svc.Search(r.Context(), q.Get("q"), parseIntDefault(q.Get("limit"), 10))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoSearchQuery):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := make([]models.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, models.NewUserResponse(&users[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
