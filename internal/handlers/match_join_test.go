package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
)

func testMatch(hostID uuid.UUID) *models.Match {
	matchID := uuid.New()
	return &models.Match{
		MatchDB: models.MatchDB{
			MatchID:       matchID,
			HostID:        hostID,
			GameID:        uuid.New(),
			Title:         "Friday night game",
			ScheduledDate: time.Now().Add(24 * time.Hour),
			MaxPlayers:    4,
			Status:        models.MatchStatusOpen,
			Tags:          []string{},
		},
		Players: []models.PlayerDB{{
			MatchID: matchID,
			UserID:  hostID,
			Status:  models.PlayerStatusConfirmed,
		}},
	}
}

func TestMatchJoinHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hostID := uuid.New()
	userID := uuid.New()
	match := testMatch(hostID)

	tests := []struct {
		name         string
		matchID      string
		authed       bool
		mockSetup    func(m *MockMatchJoiner)
		expectedCode int
	}{
		{
			name:    "success",
			matchID: match.MatchID.String(),
			authed:  true,
			mockSetup: func(m *MockMatchJoiner) {
				m.EXPECT().
					Join(gomock.Any(), match.MatchID, userID).
					Return(match, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "match full",
			matchID: match.MatchID.String(),
			authed:  true,
			mockSetup: func(m *MockMatchJoiner) {
				m.EXPECT().
					Join(gomock.Any(), match.MatchID, userID).
					Return(nil, services.ErrMatchFull)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "already joined",
			matchID: match.MatchID.String(),
			authed:  true,
			mockSetup: func(m *MockMatchJoiner) {
				m.EXPECT().
					Join(gomock.Any(), match.MatchID, userID).
					Return(nil, services.ErrAlreadyJoined)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "match not found",
			matchID: match.MatchID.String(),
			authed:  true,
			mockSetup: func(m *MockMatchJoiner) {
				m.EXPECT().
					Join(gomock.Any(), match.MatchID, userID).
					Return(nil, services.ErrMatchNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad match id",
			matchID:      "not-a-uuid",
			authed:       true,
			mockSetup:    func(m *MockMatchJoiner) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unauthenticated",
			matchID:      match.MatchID.String(),
			authed:       false,
			mockSetup:    func(m *MockMatchJoiner) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMatchJoiner(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Post("/matches/{id}/join", NewMatchJoinHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/matches/"+tt.matchID+"/join", nil)
			if tt.authed {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
