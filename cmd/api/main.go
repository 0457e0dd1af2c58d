package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/config"
	_ "shareit/docs" // Swagger docs
	"shareit/internal/booking"
	bookingCalendar "shareit/internal/booking/calendar"
	"shareit/internal/httpserver"
	"shareit/internal/storage"
	"shareit/migrations"
	"shareit/pkg/gcalendar"
	"shareit/pkg/log"
	"shareit/pkg/postgres"
	"shareit/pkg/response"
	"shareit/pkg/telegram"
)

// @title       ShareIt API
// @description Peer-to-peer item sharing: list items, request what nobody lists yet, book and review.
// @version     1
// @host        localhost:9090
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage backend: %s", cfg.Storage.Backend)

	// 3. Storage
	var pool *pgxpool.Pool
	if cfg.Storage.Backend == storage.BackendPostgres {
		if cfg.Postgres.MigrateOnStart {
			if err := postgres.MigrateUp(ctx, cfg.Postgres.DSN, migrations.FS); err != nil {
				logger.Errorf(ctx, "Failed to migrate database: %v", err)
				return
			}
			logger.Info(ctx, "Database migrations applied")
		}

		pool, err = postgres.NewPool(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
			return
		}
		defer pool.Close()
		logger.Info(ctx, "PostgreSQL connected")
	}

	// 4. Telegram alerts (optional)
	var reporter response.Reporter
	if cfg.Telegram.BotToken != "" && cfg.Telegram.AlertChatID != 0 {
		reporter = telegram.NewReporter(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.AlertChatID, cfg.Environment.Name)
		logger.Info(ctx, "Telegram alerts enabled")
	} else {
		logger.Warn(ctx, "Telegram alerts skipped: telegram.bot_token or telegram.alert_chat_id is missing")
	}

	// 5. Google Calendar booking sync (optional)
	var calendar booking.CalendarPublisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = bookingCalendar.New(calendarClient, bookingCalendar.Config{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.GoogleCalendar.Timezone,
			})
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		StorageBackend:  cfg.Storage.Backend,
		PostgresDB:      pool,
		Reporter:        reporter,
		Calendar:        calendar,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
