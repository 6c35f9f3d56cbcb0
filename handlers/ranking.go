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

type RankingHandler struct {
	ledger  *votes.Ledger
	catalog *catalog.Catalog
}

func NewRankingHandler(ledger *votes.Ledger, cat *catalog.Catalog) *RankingHandler {
	return &RankingHandler{ledger: ledger, catalog: cat}
}

// WeeklyRanking handles GET /api/ranking
// The ranking stays sealed until Sunday (day 7); it then covers days 1-6.
func (h *RankingHandler) WeeklyRanking(w http.ResponseWriter, r *http.Request) {
	if day := h.ledger.Today(); day != 7 {
		middleware.ErrorResponse(w, http.StatusForbidden, "Ranking only available on day 7")
		return
	}

	ranking, err := h.ledger.WeeklyRanking()
	if err != nil {
		slog.Error("failed to compute ranking", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Enrich with song data; a vote for an id no longer in the catalog
	// still shows up, just without metadata.
	ranked := make([]models.RankedSong, 0, len(ranking))
	for _, entry := range ranking {
		song, ok := h.catalog.ByID(entry.SongID)
		if !ok {
			song = models.Song{ID: entry.SongID, Title: "Unknown"}
		}
		ranked = append(ranked, models.RankedSong{
			RankingEntry: entry,
			Song:         song,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.RankingResponse{Ranking: ranked})
}
