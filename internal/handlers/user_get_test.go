package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(username string) *models.UserDB {
	lat := 55.75
	lon := 37.61
	return &models.UserDB{
		UserID:    uuid.New(),
		Username:  username,
		Bio:       "plays anything with meeples",
		Latitude:  &lat,
		Longitude: &lon,
		CreatedAt: time.Now(),
	}
}

func TestUserGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser("alice")

	tests := []struct {
		name         string
		userID       string
		mockSetup    func(m *MockProfileGetter)
		expectedCode int
	}{
		{
			name:   "success",
			userID: user.UserID.String(),
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), user.UserID).
					Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "not found",
			userID: user.UserID.String(),
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), user.UserID).
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad user id",
			userID:       "not-a-uuid",
			mockSetup:    func(m *MockProfileGetter) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/users/{id}", NewUserGetHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.userID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.UserResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, user.UserID, resp.ID)
				assert.Equal(t, user.Username, resp.Username)
				assert.Equal(t, user.Bio, resp.Bio)
			}
		})
	}
}
