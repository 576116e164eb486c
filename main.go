package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"github.com/alorle/acestream-panel/cache"
	"github.com/alorle/acestream-panel/config"
	"github.com/alorle/acestream-panel/fetcher"
	"github.com/alorle/acestream-panel/handlers"
	"github.com/alorle/acestream-panel/internal/app"
	"github.com/alorle/acestream-panel/internal/settings"
	"github.com/alorle/acestream-panel/logging"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.ParseLogLevel(cfg.LogLevel), "")

	log.Info("Starting acestream-panel", map[string]interface{}{
		"address":     cfg.HTTP.Address,
		"port":        cfg.HTTP.Port,
		"cache_dir":   cfg.Cache.Dir,
		"cache_ttl":   cfg.Cache.TTL.String(),
		"guide_url":   cfg.Guide.URL,
		"settings_db": cfg.SettingsDB,
	})

	storage, err := cache.NewFileStorage(cfg.Cache.Dir)
	if err != nil {
		log.Error("Failed to initialize cache storage", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	fetch := fetcher.New(cfg.Fetch.Timeout, storage, cfg.Cache.TTL, log)

	db, err := bbolt.Open(cfg.SettingsDB, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Error("Failed to open settings database", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing settings database", map[string]interface{}{"error": err.Error()})
		}
	}()

	repo, err := settings.NewBoltRepository(db)
	if err != nil {
		log.Error("Failed to create settings repository", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	a := app.New(cfg, log, fetch, repo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build the first snapshot before accepting traffic. Failures are not
	// fatal: dead sources show up as skips and the panel starts empty.
	if err := a.RefreshGuide(ctx); err != nil {
		log.Warn("Initial guide refresh failed", map[string]interface{}{"error": err.Error()})
	}
	if s, err := a.Settings(ctx); err == nil {
		a.Refresh(ctx, s)
	} else {
		log.Error("Loading settings failed", map[string]interface{}{"error": err.Error()})
	}

	// Periodic rebuild keeps the guide enrichment current even when nobody
	// touches the source forms.
	go func() {
		ticker := time.NewTicker(cfg.Cache.TTL)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := a.RefreshGuide(ctx); err != nil {
					log.Warn("Guide refresh failed", map[string]interface{}{"error": err.Error()})
				}
				if s, err := a.Settings(ctx); err == nil {
					a.Refresh(ctx, s)
				}
			}
		}
	}()

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Address, cfg.HTTP.Port),
		Handler:      handlers.SetupRoutes(handlers.Dependencies{App: a, Cfg: cfg, Log: log}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", map[string]interface{}{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server error", map[string]interface{}{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Server stopped", nil)
}
