package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-boardmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupGamePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS games (
		game_id UUID PRIMARY KEY,
		name VARCHAR(200) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		min_players INT NOT NULL,
		max_players INT NOT NULL,
		playing_time_min INT NOT NULL DEFAULT 0,
		playing_time_max INT NOT NULL DEFAULT 0,
		age_min INT NOT NULL DEFAULT 0,
		age_max INT NOT NULL DEFAULT 0,
		categories TEXT[] NOT NULL DEFAULT '{}',
		mechanics TEXT[] NOT NULL DEFAULT '{}',
		complexity INT NOT NULL DEFAULT 1,
		rating_average DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating_count INT NOT NULL DEFAULT 0,
		publisher VARCHAR(200) NOT NULL DEFAULT '',
		year_published INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newGameRow(name string) models.GameDB {
	return models.GameDB{
		GameID:     uuid.New(),
		Name:       name,
		MinPlayers: 2,
		MaxPlayers: 4,
		Categories: []string{"strategy"},
		Mechanics:  []string{"trading"},
		Complexity: 2,
	}
}

func TestGameRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupGamePostgresContainer(t)
	defer teardown()

	writeRepo := NewGameWriteRepository(db)
	readRepo := NewGameReadRepository(db)
	ctx := context.Background()

	game := newGameRow("Catan")
	require.NoError(t, writeRepo.Save(ctx, game))

	t.Run("ByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, game.GameID)
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Catan", got.Name)
		assert.Equal(t, []string{"strategy"}, []string(got.Categories))
	})

	t.Run("ByName", func(t *testing.T) {
		got, err := readRepo.GetByName(ctx, "Catan")
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, game.GameID, got.GameID)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestGameRepository_AddRating(t *testing.T) {
	db, teardown := setupGamePostgresContainer(t)
	defer teardown()

	writeRepo := NewGameWriteRepository(db)
	ctx := context.Background()

	game := newGameRow("Carcassonne")
	require.NoError(t, writeRepo.Save(ctx, game))

	got, err := writeRepo.AddRating(ctx, game.GameID, 8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.RatingAverage)
	assert.Equal(t, 1, got.RatingCount)

	got, err = writeRepo.AddRating(ctx, game.GameID, 6)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.RatingAverage)
	assert.Equal(t, 2, got.RatingCount)

	t.Run("UnknownGame", func(t *testing.T) {
		_, err := writeRepo.AddRating(ctx, uuid.New(), 8)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestGameRepository_List(t *testing.T) {
	db, teardown := setupGamePostgresContainer(t)
	defer teardown()

	writeRepo := NewGameWriteRepository(db)
	readRepo := NewGameReadRepository(db)
	ctx := context.Background()

	catan := newGameRow("Catan")
	catan.YearPublished = 1995
	chess := newGameRow("Chess")
	chess.MaxPlayers = 2
	chess.Categories = []string{"abstract"}
	chess.Complexity = 4

	require.NoError(t, writeRepo.Save(ctx, catan))
	require.NoError(t, writeRepo.Save(ctx, chess))

	t.Run("Search", func(t *testing.T) {
		search := "cat"
		games, total, err := readRepo.List(ctx, models.GameFilter{Search: &search, Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, games, 1)
		assert.Equal(t, "Catan", games[0].Name)
	})

	t.Run("CategoriesOverlap", func(t *testing.T) {
		games, _, err := readRepo.List(ctx, models.GameFilter{Categories: []string{"abstract"}, Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Chess", games[0].Name)
	})

	t.Run("PlayerCount", func(t *testing.T) {
		four := 4
		games, _, err := readRepo.List(ctx, models.GameFilter{MinPlayers: &four, Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Catan", games[0].Name)
	})

	t.Run("SortByNameAsc", func(t *testing.T) {
		games, _, err := readRepo.List(ctx, models.GameFilter{SortBy: models.GameSortName, SortOrder: "asc", Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, "Catan", games[0].Name)
		assert.Equal(t, "Chess", games[1].Name)
	})
}
