// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-of-the-week/catalog"
	"github.com/danielhkuo/song-of-the-week/middleware"
	"github.com/danielhkuo/song-of-the-week/models"
	"github.com/danielhkuo/song-of-the-week/votes"
)

type VoteHandler struct {
	ledger  *votes.Ledger
	catalog *catalog.Catalog
}

func NewVoteHandler(ledger *votes.Ledger, cat *catalog.Catalog) *VoteHandler {
	return &VoteHandler{ledger: ledger, catalog: cat}
}

// CastVote handles POST /api/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input before it reaches the ledger
	if req.SongID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song_id is required")
		return
	}
	if req.VoteType != models.VoteLike && req.VoteType != models.VoteDislike {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote_type must be like or dislike")
		return
	}
	if _, ok := h.catalog.ByID(req.SongID); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown song_id")
		return
	}

	clientIP := middleware.GetClientIP(r)
	err := h.ledger.RecordVote(req.SongID, req.VoteType, clientIP)

	if errors.Is(err, votes.ErrDuplicateVote) {
		middleware.ErrorResponse(w, http.StatusConflict, "Already voted today")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "song_id", req.SongID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "song_id", req.SongID, "vote_type", req.VoteType)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Success: true,
		Message: "Vote recorded",
	})
}
