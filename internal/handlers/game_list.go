package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// GameLister defines the interface that the catalog listing service must implement.
type GameLister interface {
	List(ctx context.Context, f models.GameFilter) ([]models.GameDB, int64, error)
}

// NewGameListHandler returns an HTTP handler for the catalog listing.
// @Summary List games
// @Description Lists catalog entries with optional search, category, player count, complexity, and rating filters.
// @Tags games
// @Produce json
// @Param search query string false "Substring match on name or description"
// @Param categories query string false "Comma-separated categories, any-overlap"
// @Param mechanics query string false "Comma-separated mechanics, any-overlap"
// @Param min_players query int false "Smallest party size the game must support"
// @Param max_players query int false "Largest party size the game must support"
// @Param complexity query int false "Complexity 1-5"
// @Param min_rating query number false "Minimum average rating"
// @Param sort_by query string false "name | rating | year | complexity"
// @Param sort_order query string false "asc | desc"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} models.GameListResponse "Games"
// @Router /games [get]
func NewGameListHandler(svc GameLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := models.GameFilter{
			SortBy:    q.Get("sort_by"),
			SortOrder: q.Get("sort_order"),
			Page:      parseIntDefault(q.Get("page"), 1),
			Limit:     parseIntDefault(q.Get("limit"), 20),
		}
		if s := q.Get("search"); s != "" {
			f.Search = &s
		}
		if s := q.Get("categories"); s != "" {
			f.Categories = strings.Split(s, ",")
		}
		if s := q.Get("mechanics"); s != "" {
			f.Mechanics = strings.Split(s, ",")
		}
		if v, err := strconv.Atoi(q.Get("min_players")); err == nil {
			f.MinPlayers = &v
		}
		if v, err := strconv.Atoi(q.Get("max_players")); err == nil {
			f.MaxPlayers = &v
		}
		if v, err := strconv.Atoi(q.Get("complexity")); err == nil {
			f.Complexity = &v
		}
		if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil {
			f.MinRating = &v
		}

		games, total, err := svc.List(r.Context(), f)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := models.GameListResponse{
			Games:      make([]models.GameResponse, 0, len(games)),
			Pagination: models.NewPagination(f.Page, f.Limit, total),
		}
		for i := range games {
			resp.Games = append(resp.Games, models.NewGameResponse(&games[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}
