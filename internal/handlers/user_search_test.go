package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser("carol")

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockUserSearcher)
		expectedCode int
		wantResults  bool
	}{
		{
			name:  "success",
			query: "q=car",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "car", 10).
					Return([]models.UserDB{*user}, nil)
			},
			expectedCode: http.StatusOK,
			wantResults:  true,
		},
		{
			name:  "custom limit",
			query: "q=car&limit=3",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "car", 3).
					Return([]models.UserDB{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "missing query",
			query: "",
			mockSetup: func(m *MockUserSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "", 10).
					Return(nil, services.ErrNoSearchQuery)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserSearcher(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUserSearchHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/users/search?"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.wantResults {
				var resp []models.UserResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				require.Len(t, resp, 1)
				assert.Equal(t, user.Username, resp[0].Username)
			}
		})
	}
}
