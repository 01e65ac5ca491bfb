package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := testUser("alice")
	user.UserID = userID

	tests := []struct {
		name         string
		body         string
		authed       bool
		mockSetup    func(m *MockProfileUpdater)
		expectedCode int
	}{
		{
			name:   "success",
			body:   `{"bio":"loves coop games"}`,
			authed: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "username taken",
			body:   `{"username":"bob"}`,
			authed: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "invalid coordinates",
			body:   `{"latitude":123.0}`,
			authed: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrInvalidCoordinates)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid body",
			body:         `{not json`,
			authed:       true,
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unauthenticated",
			body:         `{"bio":"x"}`,
			authed:       false,
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUserUpdateHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewBufferString(tt.body))
			if tt.authed {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
