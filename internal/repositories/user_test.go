package repositories

import (
	"context"
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

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		access_token TEXT,
		refresh_token TEXT,
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

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	lat := 55.7558
	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed",
		Latitude:     &lat,
	}
	require.NoError(t, writeRepo.Save(ctx, user))

	t.Run("ByUsername", func(t *testing.T) {
		got, err := readRepo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
		assert.Equal(t, "hashed", got.PasswordHash)
		assert.Nil(t, got.RefreshToken)
	})

	t.Run("ByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_TokenLifecycle(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := models.UserDB{UserID: uuid.New(), Username: "bob", PasswordHash: "hashed"}
	require.NoError(t, writeRepo.Save(ctx, user))

	require.NoError(t, writeRepo.UpdateTokens(ctx, user.UserID, "access-1", "refresh-1"))

	t.Run("RotateWithCurrentToken", func(t *testing.T) {
		rotated, err := writeRepo.RotateTokens(ctx, user.UserID, "refresh-1", "access-2", "refresh-2")
		assert.NoError(t, err)
		assert.True(t, rotated)

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "refresh-2", *got.RefreshToken)
	})

	t.Run("RotateWithStaleTokenFails", func(t *testing.T) {
		rotated, err := writeRepo.RotateTokens(ctx, user.UserID, "refresh-1", "access-3", "refresh-3")
		assert.NoError(t, err)
		assert.False(t, rotated)

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "refresh-2", *got.RefreshToken)
	})

	t.Run("ClearByRefreshToken", func(t *testing.T) {
		require.NoError(t, writeRepo.ClearTokensByRefreshToken(ctx, "refresh-2"))

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got.AccessToken)
		assert.Nil(t, got.RefreshToken)

		// Unknown token is not an error
		assert.NoError(t, writeRepo.ClearTokensByRefreshToken(ctx, "refresh-2"))
	})

	t.Run("ClearByUserID", func(t *testing.T) {
		require.NoError(t, writeRepo.UpdateTokens(ctx, user.UserID, "access-4", "refresh-4"))
		require.NoError(t, writeRepo.ClearTokens(ctx, user.UserID))

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got.RefreshToken)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	lat := 55.75
	lon := 37.61
	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     "carol",
		PasswordHash: "hashed",
		Latitude:     &lat,
		Longitude:    &lon,
	}
	require.NoError(t, writeRepo.Save(ctx, user))

	t.Run("PartialUpdateKeepsOmittedFields", func(t *testing.T) {
		bio := "heavy euros only"
		require.NoError(t, writeRepo.UpdateProfile(ctx, user.UserID, nil, &bio, nil, nil))

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "carol", got.Username)
		assert.Equal(t, "heavy euros only", got.Bio)
		assert.Equal(t, lat, *got.Latitude)
		assert.Equal(t, lon, *got.Longitude)
	})

	t.Run("UpdateUsernameAndCoordinates", func(t *testing.T) {
		name := "carol2"
		newLat := 59.93
		newLon := 30.31
		require.NoError(t, writeRepo.UpdateProfile(ctx, user.UserID, &name, nil, &newLat, &newLon))

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "carol2", got.Username)
		assert.Equal(t, "heavy euros only", got.Bio)
		assert.Equal(t, newLat, *got.Latitude)
		assert.Equal(t, newLon, *got.Longitude)
	})
}

func TestUserRepository_ListNearby(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	coord := func(lat, lon float64) (*float64, *float64) { return &lat, &lon }

	// Center: Moscow. near ~7km away, far ~630km away.
	callerLat, callerLon := coord(55.7558, 37.6173)
	nearLat, nearLon := coord(55.80, 37.70)
	farLat, farLon := coord(59.93, 30.31)

	caller := models.UserDB{UserID: uuid.New(), Username: "caller", PasswordHash: "h", Latitude: callerLat, Longitude: callerLon}
	near := models.UserDB{UserID: uuid.New(), Username: "near", PasswordHash: "h", Latitude: nearLat, Longitude: nearLon}
	far := models.UserDB{UserID: uuid.New(), Username: "far", PasswordHash: "h", Latitude: farLat, Longitude: farLon}
	unlocated := models.UserDB{UserID: uuid.New(), Username: "unlocated", PasswordHash: "h"}

	for _, u := range []models.UserDB{caller, near, far, unlocated} {
		require.NoError(t, writeRepo.Save(ctx, u))
	}

	t.Run("WithinRadiusExcludingSelf", func(t *testing.T) {
		got, err := readRepo.ListNearby(ctx, caller.UserID, *callerLat, *callerLon, 10, 20)
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "near", got[0].Username)
	})

	t.Run("WideRadiusOrdersNearestFirst", func(t *testing.T) {
		got, err := readRepo.ListNearby(ctx, caller.UserID, *callerLat, *callerLon, 1000, 20)
		assert.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "near", got[0].Username)
		assert.Equal(t, "far", got[1].Username)
	})

	t.Run("LimitCapsResults", func(t *testing.T) {
		got, err := readRepo.ListNearby(ctx, caller.UserID, *callerLat, *callerLon, 1000, 1)
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "near", got[0].Username)
	})
}

func TestUserRepository_Search(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	alice := models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: "h"}
	bob := models.UserDB{UserID: uuid.New(), Username: "bob", PasswordHash: "h"}
	require.NoError(t, writeRepo.Save(ctx, alice))
	require.NoError(t, writeRepo.Save(ctx, bob))

	bio := "ALICE superfan, plays wargames"
	require.NoError(t, writeRepo.UpdateProfile(ctx, bob.UserID, nil, &bio, nil, nil))

	t.Run("MatchesUsernameAndBioCaseInsensitively", func(t *testing.T) {
		got, err := readRepo.Search(ctx, "alice", 10)
		assert.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "alice", got[0].Username)
		assert.Equal(t, "bob", got[1].Username)
	})

	t.Run("LimitCapsResults", func(t *testing.T) {
		got, err := readRepo.Search(ctx, "alice", 1)
		assert.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("NoMatch", func(t *testing.T) {
		got, err := readRepo.Search(ctx, "zzz", 10)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
