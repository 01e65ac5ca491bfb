package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockGameReader(ctrl)
	mockWriter := services.NewMockGameWriter(ctrl)
	mockCache := services.NewMockGameCacher(ctrl)

	svc := services.NewGameService(mockReader, mockWriter, mockCache)

	gameID := uuid.New()
	game := &models.GameDB{GameID: gameID, Name: "Catan"}

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gameID).
			Return(game, nil)

		got, err := svc.Get(context.Background(), gameID)
		require.NoError(t, err)
		assert.Equal(t, "Catan", got.Name)
	})

	t.Run("cache miss falls through and backfills", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gameID).
			Return(nil, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), gameID).
			Return(game, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), *game).
			Return(nil)

		got, err := svc.Get(context.Background(), gameID)
		require.NoError(t, err)
		assert.Equal(t, "Catan", got.Name)
	})

	t.Run("cache failure degrades to the database", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gameID).
			Return(nil, assert.AnError)
		mockReader.EXPECT().
			GetByID(gomock.Any(), gameID).
			Return(game, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), *game).
			Return(nil)

		got, err := svc.Get(context.Background(), gameID)
		require.NoError(t, err)
		assert.Equal(t, "Catan", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gameID).
			Return(nil, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), gameID).
			Return(nil, nil)

		_, err := svc.Get(context.Background(), gameID)
		assert.ErrorIs(t, err, services.ErrGameNotFound)
	})
}

func TestGameService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockGameReader(ctrl)
	mockWriter := services.NewMockGameWriter(ctrl)
	mockCache := services.NewMockGameCacher(ctrl)

	svc := services.NewGameService(mockReader, mockWriter, mockCache)

	req := models.CreateGameRequest{
		Name:       "Catan",
		MinPlayers: 3,
		MaxPlayers: 4,
		Complexity: 2,
	}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByName(gomock.Any(), "Catan").
			Return(nil, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g models.GameDB) error {
				assert.Equal(t, "Catan", g.Name)
				assert.NotEqual(t, uuid.Nil, g.GameID)
				assert.Zero(t, g.RatingCount)
				return nil
			})

		game, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Catan", game.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockReader.EXPECT().
			GetByName(gomock.Any(), "Catan").
			Return(&models.GameDB{GameID: uuid.New(), Name: "Catan"}, nil)

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrGameAlreadyExists)
	})
}

func TestGameService_Rate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockGameReader(ctrl)
	mockWriter := services.NewMockGameWriter(ctrl)
	mockCache := services.NewMockGameCacher(ctrl)

	svc := services.NewGameService(mockReader, mockWriter, mockCache)

	gameID := uuid.New()

	t.Run("success invalidates the cache", func(t *testing.T) {
		rated := &models.GameDB{GameID: gameID, Name: "Catan", RatingAverage: 8, RatingCount: 1}
		mockWriter.EXPECT().
			AddRating(gomock.Any(), gameID, 8.0).
			Return(rated, nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), gameID).
			Return(nil)

		game, err := svc.Rate(context.Background(), gameID, 8)
		require.NoError(t, err)
		assert.Equal(t, 8.0, game.RatingAverage)
		assert.Equal(t, 1, game.RatingCount)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []float64{0, 0.5, 10.5, -3} {
			_, err := svc.Rate(context.Background(), gameID, rating)
			assert.ErrorIs(t, err, services.ErrInvalidRating)
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		mockWriter.EXPECT().
			AddRating(gomock.Any(), gameID, 7.0).
			Return(nil, sql.ErrNoRows)

		_, err := svc.Rate(context.Background(), gameID, 7)
		assert.ErrorIs(t, err, services.ErrGameNotFound)
	})
}
