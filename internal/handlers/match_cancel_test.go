package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMatchCancelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matchID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockMatchCanceller)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockMatchCanceller) {
				m.EXPECT().
					Cancel(gomock.Any(), matchID, userID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "non-host forbidden",
			mockSetup: func(m *MockMatchCanceller) {
				m.EXPECT().
					Cancel(gomock.Any(), matchID, userID).
					Return(services.ErrOnlyHost)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "already completed",
			mockSetup: func(m *MockMatchCanceller) {
				m.EXPECT().
					Cancel(gomock.Any(), matchID, userID).
					Return(services.ErrAlreadyCompleted)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			mockSetup: func(m *MockMatchCanceller) {
				m.EXPECT().
					Cancel(gomock.Any(), matchID, userID).
					Return(services.ErrMatchNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMatchCanceller(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/matches/{id}", NewMatchCancelHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/matches/"+matchID.String(), nil)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
