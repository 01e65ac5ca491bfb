package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, refreshToken string) error
}

// NewLogoutHandler returns an HTTP handler for logout by refresh token.
// @Summary Logout
// @Description Revokes the token pair of whichever user holds the presented refresh token. Revoking an already revoked token succeeds.
// @Tags auth
// @Accept json
// @Produce json
// @Param logoutRequest body models.LogoutRequest true "Logout Request"
// @Success 200 {object} models.MessageResponse "Logout successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LogoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Logout(r.Context(), req.RefreshToken); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.MessageResponse{
			Message: "Logout successful",
		})
	}
}
