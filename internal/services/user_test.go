package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Bio: "euro games"}

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)

		got, err := svc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		_, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice"}

	t.Run("partial update applies and reloads", func(t *testing.T) {
		req := models.UpdateProfileRequest{Bio: strPtr("loves coop games")}

		mockWriter.EXPECT().
			UpdateProfile(gomock.Any(), userID, (*string)(nil), req.Bio, (*float64)(nil), (*float64)(nil)).
			Return(nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Username: "alice", Bio: "loves coop games"}, nil)

		got, err := svc.UpdateProfile(context.Background(), userID, req)
		require.NoError(t, err)
		assert.Equal(t, "loves coop games", got.Bio)
	})

	t.Run("rename to own username is allowed", func(t *testing.T) {
		req := models.UpdateProfileRequest{Username: strPtr("alice")}

		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(user, nil)
		mockWriter.EXPECT().
			UpdateProfile(gomock.Any(), userID, req.Username, (*string)(nil), (*float64)(nil), (*float64)(nil)).
			Return(nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)

		_, err := svc.UpdateProfile(context.Background(), userID, req)
		require.NoError(t, err)
	})

	t.Run("rename colliding with another user", func(t *testing.T) {
		req := models.UpdateProfileRequest{Username: strPtr("bob")}

		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "bob").
			Return(&models.UserDB{UserID: uuid.New(), Username: "bob"}, nil)

		_, err := svc.UpdateProfile(context.Background(), userID, req)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		req := models.UpdateProfileRequest{Latitude: f64Ptr(123)}

		_, err := svc.UpdateProfile(context.Background(), userID, req)
		assert.ErrorIs(t, err, services.ErrInvalidCoordinates)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		req := models.UpdateProfileRequest{Longitude: f64Ptr(-200)}

		_, err := svc.UpdateProfile(context.Background(), userID, req)
		assert.ErrorIs(t, err, services.ErrInvalidCoordinates)
	})
}

func TestUserService_Nearby(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("defaults radius and limit", func(t *testing.T) {
		mockReader.EXPECT().
			ListNearby(gomock.Any(), userID, 55.75, 37.61, 10.0, 20).
			Return([]models.UserDB{}, nil)

		_, err := svc.Nearby(context.Background(), userID, 55.75, 37.61, 0, 0)
		require.NoError(t, err)
	})

	t.Run("passes through explicit radius and limit", func(t *testing.T) {
		mockReader.EXPECT().
			ListNearby(gomock.Any(), userID, 55.75, 37.61, 25.0, 5).
			Return([]models.UserDB{}, nil)

		_, err := svc.Nearby(context.Background(), userID, 55.75, 37.61, 25, 5)
		require.NoError(t, err)
	})

	t.Run("rejects out of range center", func(t *testing.T) {
		_, err := svc.Nearby(context.Background(), userID, 91, 37.61, 10, 20)
		assert.ErrorIs(t, err, services.ErrInvalidCoordinates)
	})
}

func TestUserService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "", 10)
		assert.ErrorIs(t, err, services.ErrNoSearchQuery)
	})

	t.Run("defaults the limit", func(t *testing.T) {
		mockReader.EXPECT().
			Search(gomock.Any(), "ali", 10).
			Return([]models.UserDB{{Username: "alice"}}, nil)

		got, err := svc.Search(context.Background(), "ali", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "alice", got[0].Username)
	})
}
