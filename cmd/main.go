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

	"github.com/vozduh-dev/invest-api/internal/facades"
	"github.com/vozduh-dev/invest-api/internal/handlers"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/middlewares"
	"github.com/vozduh-dev/invest-api/internal/repositories"
	"github.com/vozduh-dev/invest-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title invest-api
// @version 1.0.0
// @description Backend for the real estate investment marketplace
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		objectCacheTTL,
		kafkaBrokers, kafkaTopic,
		telegramToken, sheetID, cdnBaseURL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		objectCacheTTL,
		kafkaBrokers, kafkaTopic,
		telegramToken, sheetID, cdnBaseURL,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka and integration configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	objectCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	telegramToken, sheetID, cdnBaseURL string,
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
	pgDB = getEnv("POSTGRES_DB", "invest")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config; an empty host disables the object cache
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	var cacheTTLSecond int
	if cacheTTLSecond, err = strconv.Atoi(getEnv("OBJECT_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}
	objectCacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config; empty brokers disable event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "favorite-events")

	// Integrations
	telegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	sheetID = getEnv("SHEET_ID", "")
	cdnBaseURL = getEnv("CDN_BASE_URL", "https://cdn.vozduh.example.com/uploads")

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	objectCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	telegramToken, sheetID, cdnBaseURL string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis when configured
	var objectCache services.ObjectCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		objectCache = repositories.NewObjectCacheRepository(rdb, objectCacheTTL)
	}

	// Connect to Kafka when configured
	var eventWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
	}

	// Initialize facades
	telegramFacade := facades.NewTelegramFacade(telegramToken, "")
	sheetsFacade := facades.NewSheetsFacade(sheetID, "")

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	objectReadRepo := repositories.NewObjectReadRepository(db, middlewares.GetTxFromContext)
	objectWriteRepo := repositories.NewObjectWriteRepository(db, middlewares.GetTxFromContext)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db, middlewares.GetTxFromContext)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, middlewares.GetTxFromContext)
	notificationReadRepo := repositories.NewNotificationReadRepository(db, middlewares.GetTxFromContext)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	usersService := services.NewUsersService(userReadRepo, userWriteRepo)
	objectsService := services.NewObjectsService(objectReadRepo, objectWriteRepo, userReadRepo, objectCache)
	favoritesService := services.NewFavoritesService(favoriteReadRepo, favoriteWriteRepo, notificationWriteRepo, eventWriter)
	notificationsService := services.NewNotificationsService(notificationReadRepo, notificationWriteRepo)
	telegramService := services.NewTelegramService(telegramFacade)
	importerService := services.NewImporterService(userReadRepo, objectWriteRepo, sheetsFacade)

	// Initialize handlers
	apiHandler := handlers.NewDispatcher(
		handlers.NewUsersHandler(usersService),
		handlers.NewObjectsHandler(objectsService),
		handlers.NewFavoritesHandler(favoritesService),
		handlers.NewNotificationsHandler(notificationsService),
	)
	adminUsersHandler := handlers.NewAdminUsersHandler(usersService)
	importHandler := handlers.NewImportHandler(importerService)
	telegramSendHandler := handlers.NewTelegramSendHandler(telegramService)
	telegramWebhookHandler := handlers.NewTelegramWebhookHandler(telegramService)
	uploadHandler := handlers.NewUploadHandler(cdnBaseURL)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware)

	// Database-backed routes share one transaction per request
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Handle("/api", apiHandler)
		r.Handle("/admin/users", adminUsersHandler)
		r.Handle("/import", importHandler)
	})

	r.Handle("/telegram/send", telegramSendHandler)
	r.Handle("/telegram/webhook", telegramWebhookHandler)
	r.Handle("/upload", uploadHandler)

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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
