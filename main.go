package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emonitor-backend/internal/api"
	"emonitor-backend/internal/config"
	"emonitor-backend/internal/db"
	"emonitor-backend/internal/live"
	"emonitor-backend/internal/stream"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Error connecting to Postgres", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	hub := live.NewHub()

	var publisher *stream.Publisher
	if brokers := cfg.KafkaBrokersList(); len(brokers) > 0 {
		publisher = stream.New(stream.Config{
			Brokers: brokers,
			Topic:   cfg.KafkaTopic,
		})
		defer publisher.Close(ctx)
		slog.InfoContext(ctx, "Reading stream mirror enabled", "topic", cfg.KafkaTopic)
	}

	apiCfg := api.Config{
		DB:     store,
		Hub:    hub,
		Secret: cfg.SecretKey,
	}
	if publisher != nil {
		apiCfg.Stream = publisher
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.New(apiCfg).Router(),
	}

	go func() {
		<-sigs
		slog.InfoContext(ctx, "Shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "Error shutting down server", "error", err)
		}
		cancel()
	}()

	slog.InfoContext(ctx, "Server is running", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.ErrorContext(ctx, "Error starting server", "error", err)
		os.Exit(1)
	}
}
