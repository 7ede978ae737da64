package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tlforge/content-forge/app/api"
	"github.com/tlforge/content-forge/app/cfg"
	"github.com/tlforge/content-forge/app/compose"
	"github.com/tlforge/content-forge/app/database"
	"github.com/tlforge/content-forge/app/forge"
	"github.com/tlforge/content-forge/app/relay"
)

func main() {
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appConfig.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Content Forge server", "version", appConfig.Version)

	// Database connection
	db, err := database.Open(appConfig.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database ready", "path", appConfig.DBPath, "migration_version", version, "dirty", dirty)

	// Composer profile
	profile, err := compose.LoadProfile(appConfig.ProfilePath)
	if err != nil {
		log.Fatalf("Failed to load composer profile: %v", err)
	}
	slog.Info("Composer profile loaded", "campaign", profile.Campaign,
		"hashtag_policy", profile.Hashtags.Policy)

	// Initialize core components
	sourceRepo := database.NewSourceRepository(db)
	derivativeRepo := database.NewDerivativeRepository(db)
	composer := compose.NewComposer(profile)
	writer := forge.NewWriter(sourceRepo, derivativeRepo, composer)
	relayClient := relay.NewClient(appConfig.AutomationEndpoint, appConfig.UserAgent)

	if appConfig.AutomationEndpoint == "" {
		slog.Warn("No automation endpoint configured; /api/relay and /api/forge will fail until AUTOMATION_WEBHOOK_URL is set")
	}

	// Initialize HTTP server
	apiHandler := api.NewHandler(sourceRepo, derivativeRepo, writer, relayClient)
	server := api.NewServer(apiHandler, appConfig.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appConfig.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("HTTP server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Content Forge server shutdown complete")
}
