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
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(nil, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.UserDB) error {
				assert.Equal(t, "alice", u.Username)
				assert.NotEqual(t, uuid.Nil, u.UserID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
				return nil
			})
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), gomock.Any()).
			Return("access", "refresh", nil)
		mockWriter.EXPECT().
			UpdateTokens(gomock.Any(), gomock.Any(), "access", "refresh").
			Return(nil)

		user, access, refresh, err := svc.Register(context.Background(), "alice", "secret123", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "access", access)
		assert.Equal(t, "refresh", refresh)
	})

	t.Run("username taken", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(&models.UserDB{UserID: uuid.New(), Username: "alice"}, nil)

		_, _, _, err := svc.Register(context.Background(), "alice", "secret123", nil, nil)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(user, nil)
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), userID).
			Return("access", "refresh", nil)
		mockWriter.EXPECT().
			UpdateTokens(gomock.Any(), userID, "access", "refresh").
			Return(nil)

		access, refresh, err := svc.Login(context.Background(), "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "access", access)
		assert.Equal(t, "refresh", refresh)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "nobody").
			Return(nil, nil)

		_, _, err := svc.Login(context.Background(), "nobody", "secret123")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(user, nil)

		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockJWT.EXPECT().
			ParseRefresh(gomock.Any(), "old-refresh").
			Return(userID, nil)
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), userID).
			Return("new-access", "new-refresh", nil)
		mockWriter.EXPECT().
			RotateTokens(gomock.Any(), userID, "old-refresh", "new-access", "new-refresh").
			Return(true, nil)

		access, refresh, err := svc.Refresh(context.Background(), "old-refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", access)
		assert.Equal(t, "new-refresh", refresh)
	})

	t.Run("stale token rejected even with valid signature", func(t *testing.T) {
		mockJWT.EXPECT().
			ParseRefresh(gomock.Any(), "rotated-out").
			Return(userID, nil)
		mockJWT.EXPECT().
			GeneratePair(gomock.Any(), userID).
			Return("new-access", "new-refresh", nil)
		mockWriter.EXPECT().
			RotateTokens(gomock.Any(), userID, "rotated-out", "new-access", "new-refresh").
			Return(false, nil)

		_, _, err := svc.Refresh(context.Background(), "rotated-out")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("unparseable token", func(t *testing.T) {
		mockJWT.EXPECT().
			ParseRefresh(gomock.Any(), "garbage").
			Return(uuid.Nil, assert.AnError)

		_, _, err := svc.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("revoke by refresh token is idempotent", func(t *testing.T) {
		mockWriter.EXPECT().
			ClearTokensByRefreshToken(gomock.Any(), "whatever").
			Return(nil).
			Times(2)

		assert.NoError(t, svc.Logout(context.Background(), "whatever"))
		assert.NoError(t, svc.Logout(context.Background(), "whatever"))
	})

	t.Run("revoke all for user", func(t *testing.T) {
		userID := uuid.New()
		mockWriter.EXPECT().
			ClearTokens(gomock.Any(), userID).
			Return(nil)

		assert.NoError(t, svc.LogoutAll(context.Background(), userID))
	})
}
