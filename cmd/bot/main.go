package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/api"
	"github.com/diegoclair/hybrid-attendance-bot/internal/config"
	"github.com/diegoclair/hybrid-attendance-bot/internal/database"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/service"
	"github.com/diegoclair/hybrid-attendance-bot/internal/handlers"
	"github.com/diegoclair/hybrid-attendance-bot/internal/logger"
	"github.com/diegoclair/hybrid-attendance-bot/migrator/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zl.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zl.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zl.Fatal("Failed to run migrations", zap.Error(err))
	}
	zl.Info("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	services, err := service.NewInstance(cfg, database.NewInstance(db), slackClient, zl)
	if err != nil {
		zl.Fatal("Failed to initialize services", zap.Error(err))
	}

	if services.Reminder != nil {
		services.Reminder.Start()
		defer services.Reminder.Stop()
	} else {
		zl.Info("Daily reminder disabled, set REMINDER_CHANNEL_ID and SLACK_BOT_TOKEN to enable it")
	}

	var slashCommand http.HandlerFunc
	if cfg.SlackSigningSecret != "" {
		slashCommand = handlers.New(services.Attendance, cfg.SlackSigningSecret, zl).HandleSlashCommand
	} else {
		zl.Warn("SLACK_SIGNING_SECRET not set, slash commands disabled")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(&api.Handler{Attendance: services.Attendance, Log: zl}, slashCommand, zl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Graceful shutdown failed", zap.Error(err))
	}
}
