package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "alice"}

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
	}{
		{
			name: "success",
			body: models.RegisterRequest{Username: "alice", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123", (*float64)(nil), (*float64)(nil)).
					Return(user, "access", "refresh", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "username taken",
			body: models.RegisterRequest{Username: "alice", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123", (*float64)(nil), (*float64)(nil)).
					Return(nil, "", "", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "password too short",
			body:         models.RegisterRequest{Username: "alice", Password: "short"},
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			rawBody:      "{not json",
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			body: models.RegisterRequest{Username: "bob", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret123", (*float64)(nil), (*float64)(nil)).
					Return(nil, "", "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody != "" {
				body = bytes.NewBufferString(tt.rawBody)
			} else {
				data, err := json.Marshal(tt.body)
				assert.NoError(t, err)
				body = bytes.NewBuffer(data)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp models.RegisterResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "alice", resp.User.Username)
				assert.Equal(t, "access", resp.AccessToken)
				assert.Equal(t, "refresh", resp.RefreshToken)
			}
		})
	}
}
