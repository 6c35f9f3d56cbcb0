// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-of-the-week/catalog"
	"github.com/danielhkuo/song-of-the-week/middleware"
	"github.com/danielhkuo/song-of-the-week/models"
	"github.com/danielhkuo/song-of-the-week/votes"
)

type TodayHandler struct {
	ledger  *votes.Ledger
	catalog *catalog.Catalog
}

func NewTodayHandler(ledger *votes.Ledger, cat *catalog.Catalog) *TodayHandler {
	return &TodayHandler{ledger: ledger, catalog: cat}
}

// Today handles GET /api/today
// Returns the day index, today's song, and whether the caller already voted.
func (h *TodayHandler) Today(w http.ResponseWriter, r *http.Request) {
	day := h.ledger.Today()

	song, ok := h.catalog.ByDay(day)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No song for today")
		return
	}

	identityHash := h.ledger.HashIdentity(middleware.GetClientIP(r))
	hasVoted, err := h.ledger.HasVotedToday(identityHash)
	if err != nil {
		slog.Error("failed to check vote status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TodayResponse{
		Day:      day,
		Song:     song,
		HasVoted: hasVoted,
	})
}

// Health handles GET /health
func (h *TodayHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Day:    h.ledger.Today(),
	})
}
