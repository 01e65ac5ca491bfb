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

// MyMatchLister defines the interface that the personal listing service must implement.
type MyMatchLister interface {
	ListMine(ctx context.Context, userID uuid.UUID, status *string, page, limit int) ([]models.Match, int64, error)
}

// NewMatchMyHandler returns an HTTP handler listing the caller's matches.
// @Summary List my matches
// @Description Lists matches the caller hosts or participates in, in any status.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by match status"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} models.MatchListResponse "Matches"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /matches/my [get]
func NewMatchMyHandler(svc MyMatchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		q := r.URL.Query()
		page := parseIntDefault(q.Get("page"), 1)
		limit := parseIntDefault(q.Get("limit"), 20)

		var status *string
		if s := q.Get("status"); s != "" {
			status = &s
		}

		matches, total, err := svc.ListMine(r.Context(), userID, status, page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newMatchListResponse(matches, page, limit, total))
	}
}
