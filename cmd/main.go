package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-boardmatch/internal/handlers"

	"github.com/sbilibin2017/gw-boardmatch/internal/jwt"
	"github.com/sbilibin2017/gw-boardmatch/internal/logger"
	"github.com/sbilibin2017/gw-boardmatch/internal/repositories"
	"github.com/sbilibin2017/gw-boardmatch/internal/services"

	"github.com/sbilibin2017/gw-boardmatch/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-boardmatch/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-boardmatch API
// @version 1.0.0
// @description Microservice for board game match-making: player accounts, game catalog, and match lifecycle
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheExpSecond,
		kafkaBrokers, kafkaTopic,
		jwtAccessSecret, jwtRefreshSecret, jwtAccessExp, jwtRefreshExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheExpSecond,
		kafkaBrokers, kafkaTopic,
		jwtAccessSecret, jwtRefreshSecret, jwtAccessExp, jwtRefreshExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtAccessSecret, jwtRefreshSecret string,
	jwtAccessExpSecond, jwtRefreshExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheExpSecond, err = strconv.Atoi(getEnv("CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "match-events")

	// JWT config
	jwtAccessSecret = getEnv("JWT_ACCESS_SECRET_KEY", "my_super_secret_access_key")
	jwtRefreshSecret = getEnv("JWT_REFRESH_SECRET_KEY", "my_super_secret_refresh_key")
	if jwtAccessExpSecond, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_SECOND", "900")); err != nil {
		return
	}
	if jwtRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// ensureSchema creates the application tables if they do not exist yet.
func ensureSchema(ctx context.Context, db *sqlx.DB) error {
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

	CREATE TABLE IF NOT EXISTS matches (
		match_id UUID PRIMARY KEY,
		host_id UUID NOT NULL,
		game_id UUID NOT NULL,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		venue VARCHAR(200) NOT NULL DEFAULT '',
		address VARCHAR(300) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		scheduled_date TIMESTAMP NOT NULL,
		duration_minutes INT NOT NULL DEFAULT 120,
		max_players INT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'open',
		experience VARCHAR(20) NOT NULL DEFAULT 'any',
		age_min INT NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		tags TEXT[] NOT NULL DEFAULT '{}',
		visibility VARCHAR(20) NOT NULL DEFAULT 'public',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS match_players (
		match_id UUID NOT NULL,
		user_id UUID NOT NULL,
		joined_at TIMESTAMP NOT NULL DEFAULT NOW(),
		status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		PRIMARY KEY (match_id, user_id)
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// run initializes the logger, database, Redis, Kafka producer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtAccessSecret, jwtRefreshSecret string,
	jwtAccessExpSecond, jwtRefreshExpSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		log.Fatal("schema migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka producer for match lifecycle events. The writer connects
	// lazily on first publish.
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokenSvc := jwt.New(
		jwtAccessSecret, jwtRefreshSecret,
		time.Duration(jwtAccessExpSecond)*time.Second,
		time.Duration(jwtRefreshExpSecond)*time.Second,
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	matchReadRepo := repositories.NewMatchReadRepository(db, middlewares.GetTxFromContext)
	matchWriteRepo := repositories.NewMatchWriteRepository(db, middlewares.GetTxFromContext)
	gameReadRepo := repositories.NewGameReadRepository(db)
	gameWriteRepo := repositories.NewGameWriteRepository(db)
	gameCacheRepo := repositories.NewGameCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc)
	gameService := services.NewGameService(gameReadRepo, gameWriteRepo, gameCacheRepo)
	matchService := services.NewMatchService(matchReadRepo, matchWriteRepo, gameReadRepo, kafkaWriter)
	userService := services.NewUserService(userReadRepo, userWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	refreshHandler := handlers.NewRefreshHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	logoutAllHandler := handlers.NewLogoutAllHandler(authService)

	gameCreateHandler := handlers.NewGameCreateHandler(gameService)
	gameGetHandler := handlers.NewGameGetHandler(gameService)
	gameListHandler := handlers.NewGameListHandler(gameService)
	gameRateHandler := handlers.NewGameRateHandler(gameService)

	matchCreateHandler := handlers.NewMatchCreateHandler(matchService)
	matchGetHandler := handlers.NewMatchGetHandler(matchService)
	matchListHandler := handlers.NewMatchListHandler(matchService)
	matchMyHandler := handlers.NewMatchMyHandler(matchService)
	matchJoinHandler := handlers.NewMatchJoinHandler(matchService)
	matchLeaveHandler := handlers.NewMatchLeaveHandler(matchService)
	matchCancelHandler := handlers.NewMatchCancelHandler(matchService)
	matchUpdateHandler := handlers.NewMatchUpdateHandler(matchService)
	matchStatusHandler := handlers.NewMatchStatusHandler(matchService)

	userGetHandler := handlers.NewUserGetHandler(userService)
	userUpdateHandler := handlers.NewUserUpdateHandler(userService)
	userNearbyHandler := handlers.NewUserNearbyHandler(userService)
	userSearchHandler := handlers.NewUserSearchHandler(userService)

	healthHandler := handlers.NewHealthHandler()

	authMiddleware := middlewares.AuthMiddleware(tokenSvc)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/auth/register", registerHandler)
	r.Post("/auth/login", loginHandler)
	r.Post("/auth/refresh", refreshHandler)
	r.Post("/auth/logout", logoutHandler)

	r.Get("/games", gameListHandler)
	r.Get("/games/{id}", gameGetHandler)

	r.Get("/matches", matchListHandler)

	r.Get("/users/{id}", userGetHandler)

	r.Get("/health", healthHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/auth/logout-all", logoutAllHandler)

		r.Post("/games", gameCreateHandler)
		r.Post("/games/{id}/rate", gameRateHandler)

		r.Get("/matches/my", matchMyHandler)

		r.Put("/users/profile", userUpdateHandler)
		r.Get("/users/nearby", userNearbyHandler)
		r.Get("/users/search", userSearchHandler)

		// Roster and lifecycle mutations run inside a request transaction
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/matches", matchCreateHandler)
			r.Put("/matches/{id}", matchUpdateHandler)
			r.Delete("/matches/{id}", matchCancelHandler)
			r.Post("/matches/{id}/join", matchJoinHandler)
			r.Post("/matches/{id}/leave", matchLeaveHandler)
			r.Post("/matches/{id}/status", matchStatusHandler)
		})
	})

	r.Get("/matches/{id}", matchGetHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
