package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/geo"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
)

// defaultNearbyRadiusKm bounds the proximity listing when the client sends
// no radius.
const defaultNearbyRadiusKm = 10

// NearbyLister defines the interface that the proximity listing service must implement.
type NearbyLister interface {
	Nearby(ctx context.Context, userID uuid.UUID, lat, lon, radiusKm float64, limit int) ([]models.UserDB, error)
}

// NewUserNearbyHandler returns an HTTP handler for the nearby-users listing.
// @Summary List nearby users
// @Description Lists users with a stored home coordinate within a radius of the given point, nearest first, excluding the caller.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius query number false "Radius in kilometers, default 10"
// @Param limit query int false "Result cap, default 20"
// @Success 200 {array} models.NearbyUserResponse "Nearby users"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid coordinates"
// @Router /users/nearby [get]
func NewUserNearbyHandler(svc NearbyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		q := r.URL.Query()

		lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
		lon, errLon := strconv.ParseFloat(q.Get("longitude"), 64)
		if errLat != nil || errLon != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "latitude and longitude are required"})
			return
		}

		radius := float64(defaultNearbyRadiusKm)
		if v, err := strconv.ParseFloat(q.Get("radius"), 64); err == nil && v > 0 {
			radius = v
		}
		limit := parseIntDefault(q.Get("limit"), 20)

		users, err := svc.Nearby(r.Context(), userID, lat, lon, radius, limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCoordinates):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := make([]models.NearbyUserResponse, 0, len(users))
		for i := range users {
			entry := models.NearbyUserResponse{UserResponse: models.NewUserResponse(&users[i])}
			if users[i].Latitude != nil && users[i].Longitude != nil {
				entry.DistanceKm = geo.Distance(lat, lon, *users[i].Latitude, *users[i].Longitude)
			}
			resp = append(resp, entry)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
