// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/danielhkuo/song-of-the-week/catalog"
	"github.com/danielhkuo/song-of-the-week/cliparse"
	"github.com/danielhkuo/song-of-the-week/handlers"
	"github.com/danielhkuo/song-of-the-week/middleware"
	"github.com/danielhkuo/song-of-the-week/shares"
	"github.com/danielhkuo/song-of-the-week/votes"
)

// API rate limit: 20 requests per minute per client IP.
const (
	rateLimitMax    = 20
	rateLimitWindow = time.Minute
)

func NewRouter(ledger *votes.Ledger, registry *shares.Registry, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	todayHandler := handlers.NewTodayHandler(ledger, cat)
	voteHandler := handlers.NewVoteHandler(ledger, cat)
	rankingHandler := handlers.NewRankingHandler(ledger, cat)
	shareHandler := handlers.NewShareHandler(registry, cat)

	limiter := middleware.NewRateLimiter(rateLimitMax, rateLimitWindow)
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(limiter.Limit(h))
	}

	// Health check
	mux.HandleFunc("GET /health", todayHandler.Health)

	// Daily song and voting
	mux.HandleFunc("GET /api/today", api(todayHandler.Today))
	mux.HandleFunc("POST /api/vote", api(voteHandler.CastVote))

	// Weekly ranking (sealed until day 7)
	mux.HandleFunc("GET /api/ranking", api(rankingHandler.WeeklyRanking))

	// Share links
	mux.HandleFunc("POST /api/share", api(shareHandler.CreateShare))
	mux.HandleFunc("GET /api/share/{id}", api(shareHandler.GetShare))

	// Frontend
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("song-of-the-week API v1"))
		})
	}

	return mux
}
