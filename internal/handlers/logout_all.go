package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// AllLogouter defines the interface that the full logout service must implement.
type AllLogouter interface {
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}

// NewLogoutAllHandler returns an HTTP handler that revokes the caller's stored pair.
// @Summary Logout everywhere
// @Description Revokes the stored token pair of the authenticated caller.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse "Logout successful"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/logout-all [post]
func NewLogoutAllHandler(svc AllLogouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := svc.LogoutAll(r.Context(), userID); err != nil {
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
