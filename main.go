// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/song-of-the-week/catalog"
	"github.com/danielhkuo/song-of-the-week/cliparse"
	"github.com/danielhkuo/song-of-the-week/db"
	"github.com/danielhkuo/song-of-the-week/middleware"
	"github.com/danielhkuo/song-of-the-week/router"
	"github.com/danielhkuo/song-of-the-week/shares"
	"github.com/danielhkuo/song-of-the-week/votes"
)

func main() {
	var err error

	// Load .env if present (dev convenience; real deployments set env directly)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the vote store
	dbConn, dialect, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, dialect); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "dialect", dialect)

	// Load the week's songs
	cat, err := catalog.Load(cfg.SongsPath)
	if err != nil {
		slog.Error("song catalog load failed", "error", err, "path", cfg.SongsPath)
		os.Exit(1)
	}

	ledger := votes.NewLedger(dbConn, cfg.IPHashSalt)
	registry := shares.NewRegistry(dbConn)

	// Create router
	mux := router.NewRouter(ledger, registry, cat, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "day", ledger.Today())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
