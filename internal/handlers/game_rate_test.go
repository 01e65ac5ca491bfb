package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGameRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameID := uuid.New()
	rated := &models.GameDB{GameID: gameID, Name: "Catan", RatingAverage: 8, RatingCount: 1}

	tests := []struct {
		name         string
		gameID       string
		rating       float64
		mockSetup    func(m *MockGameRater)
		expectedCode int
	}{
		{
			name:   "success",
			gameID: gameID.String(),
			rating: 8,
			mockSetup: func(m *MockGameRater) {
				m.EXPECT().
					Rate(gomock.Any(), gameID, 8.0).
					Return(rated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "rating out of range",
			gameID: gameID.String(),
			rating: 11,
			mockSetup: func(m *MockGameRater) {
				m.EXPECT().
					Rate(gomock.Any(), gameID, 11.0).
					Return(nil, services.ErrInvalidRating)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "game not found",
			gameID: gameID.String(),
			rating: 7,
			mockSetup: func(m *MockGameRater) {
				m.EXPECT().
					Rate(gomock.Any(), gameID, 7.0).
					Return(nil, services.ErrGameNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad game id",
			gameID:       "not-a-uuid",
			rating:       7,
			mockSetup:    func(m *MockGameRater) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGameRater(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Post("/games/{id}/rate", NewGameRateHandler(mockSvc))

			data, err := json.Marshal(models.RateGameRequest{Rating: tt.rating})
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/games/"+tt.gameID+"/rate", bytes.NewBuffer(data))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.GameResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 8.0, resp.RatingAverage)
				assert.Equal(t, 1, resp.RatingCount)
			}
		})
	}
}
