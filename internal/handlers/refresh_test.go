package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         models.RefreshRequest
		mockSetup    func(m *MockRefresher)
		expectedCode int
	}{
		{
			name: "success",
			body: models.RefreshRequest{RefreshToken: "old-refresh"},
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "old-refresh").
					Return("new-access", "new-refresh", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "stale token",
			body: models.RefreshRequest{RefreshToken: "rotated-out"},
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "rotated-out").
					Return("", "", services.ErrInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing token",
			body:         models.RefreshRequest{},
			mockSetup:    func(m *MockRefresher) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRefresher(ctrl)
			tt.mockSetup(mockSvc)

			data, err := json.Marshal(tt.body)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(data))
			rr := httptest.NewRecorder()

			NewRefreshHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.TokenPairResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "new-access", resp.AccessToken)
				assert.Equal(t, "new-refresh", resp.RefreshToken)
			}
		})
	}
}
