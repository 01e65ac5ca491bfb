package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/geo"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
)

// defaultMaxDistanceKm bounds geospatial listings when the client sends
// coordinates without a radius.
const defaultMaxDistanceKm = 50

// MatchLister defines the interface that the match listing service must implement.
type MatchLister interface {
	List(ctx context.Context, f models.MatchFilter) ([]models.Match, int64, error)
}

// NewMatchListHandler returns an HTTP handler for the public match listing.
// @Summary List matches
// @Description Lists open and full matches, optionally filtered by game, schedule window, capacity, experience, tags, and distance from a coordinate.
// @Tags matches
// @Produce json
// @Param game_id query string false "Game ID"
// @Param latitude query number false "Center latitude for distance filtering"
// @Param longitude query number false "Center longitude for distance filtering"
// @Param max_distance query number false "Radius in kilometers, default 50"
// @Param date_from query string false "RFC 3339 lower bound on scheduled date"
// @Param date_to query string false "RFC 3339 upper bound on scheduled date"
// @Param max_players query int false "Maximum capacity"
// @Param experience query string false "beginner | intermediate | advanced | any"
// @Param tags query string false "Comma-separated tags, any-overlap"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} models.MatchListResponse "Matches"
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Router /matches [get]
func NewMatchListHandler(svc MatchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := models.MatchFilter{
			MaxDistanceKm: defaultMaxDistanceKm,
			Page:          parseIntDefault(q.Get("page"), 1),
			Limit:         parseIntDefault(q.Get("limit"), 20),
		}

		if s := q.Get("game_id"); s != "" {
			id, err := uuid.Parse(s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid game_id"})
				return
			}
			f.GameID = &id
		}
		if v, err := strconv.ParseFloat(q.Get("latitude"), 64); err == nil {
			f.Latitude = &v
		}
		if v, err := strconv.ParseFloat(q.Get("longitude"), 64); err == nil {
			f.Longitude = &v
		}
		if v, err := strconv.ParseFloat(q.Get("max_distance"), 64); err == nil && v > 0 {
			f.MaxDistanceKm = v
		}
		if s := q.Get("date_from"); s != "" {
			ts, err := time.Parse(time.RFC3339, s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid date_from"})
				return
			}
			f.DateFrom = &ts
		}
		if s := q.Get("date_to"); s != "" {
			ts, err := time.Parse(time.RFC3339, s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid date_to"})
				return
			}
			f.DateTo = &ts
		}
		if v, err := strconv.Atoi(q.Get("max_players")); err == nil {
			f.MaxPlayers = &v
		}
		if s := q.Get("experience"); s != "" {
			f.Experience = &s
		}
		if s := q.Get("tags"); s != "" {
			f.Tags = strings.Split(s, ",")
		}

		matches, total, err := svc.List(r.Context(), f)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := newMatchListResponse(matches, f.Page, f.Limit, total)
		if f.Latitude != nil && f.Longitude != nil {
			for i := range resp.Matches {
				d := geo.Distance(*f.Latitude, *f.Longitude,
					resp.Matches[i].Location.Latitude, resp.Matches[i].Location.Longitude)
				resp.Matches[i].DistanceKm = &d
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func newMatchListResponse(matches []models.Match, page, limit int, total int64) models.MatchListResponse {
	resp := models.MatchListResponse{
		Matches:    make([]models.MatchResponse, 0, len(matches)),
		Pagination: models.NewPagination(page, limit, total),
	}
	for i := range matches {
		resp.Matches = append(resp.Matches, models.NewMatchResponse(&matches[i]))
	}
	return resp
}
