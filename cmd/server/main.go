package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slowka/internal/config"
	"slowka/internal/domain"
	"slowka/internal/fixtures"
	"slowka/internal/handler"
	"slowka/internal/middleware"
	"slowka/internal/repository/postgres"
	"slowka/internal/store"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting slowka")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("words_source", cfg.WordsSource))

	words, err := loadFixtures(cfg.FixturesPath)
	if err != nil {
		logger.Fatal("Failed to load fixtures", zap.Error(err))
	}

	// The store is fully populated before anything starts serving
	var (
		wordStore store.WordStore
		pinger    handler.Pinger
	)
	switch cfg.WordsSource {
	case config.SourcePostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		wordRepo := postgres.NewWordRepo(db)
		if err := fixtures.Seed(context.Background(), wordRepo, words, logger); err != nil {
			logger.Fatal("Failed to seed words", zap.Error(err))
		}

		wordStore = wordRepo
		pinger = wordRepo
	default:
		wordStore = store.NewMemoryStore(words)
		logger.Info("Loaded words into memory", zap.Int("count", len(words)))
	}

	renderer, err := handler.NewTemplateRenderer()
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	h := handler.NewHandler(wordStore, renderer, pinger, logger)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.RateLimit(limiter),
		)(h.Routes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		handler.NewBot(bot, wordStore, logger).RegisterHandlers()

		go func() {
			logger.Info("Telegram bot started")
			bot.Start()
		}()
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if bot != nil {
		bot.Stop()
	}

	logger.Info("Stopped gracefully")
}

// loadFixtures reads the configured fixture file or falls back to the embedded set
func loadFixtures(path string) ([]domain.WordPair, error) {
	if path == "" {
		return fixtures.Default()
	}
	return fixtures.Load(path)
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies pending schema migrations
func runMigrations(db *sql.DB, source string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
