// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-of-the-week/catalog"
	"github.com/danielhkuo/song-of-the-week/middleware"
	"github.com/danielhkuo/song-of-the-week/models"
	"github.com/danielhkuo/song-of-the-week/shares"
)

type ShareHandler struct {
	registry *shares.Registry
	catalog  *catalog.Catalog
}

func NewShareHandler(registry *shares.Registry, cat *catalog.Catalog) *ShareHandler {
	return &ShareHandler{registry: registry, catalog: cat}
}

// CreateShare handles POST /api/share
func (h *ShareHandler) CreateShare(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShareRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SongID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song_id is required")
		return
	}
	// Catalog validation happens here, not in the registry
	if _, ok := h.catalog.ByID(req.SongID); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown song_id")
		return
	}

	shareID, err := h.registry.Create(req.SongID)
	if err != nil {
		slog.Error("failed to create share", "error", err, "song_id", req.SongID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create share")
		return
	}

	slog.Info("share created", "share_id", shareID, "song_id", req.SongID)

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateShareResponse{
		ShareID:  shareID,
		ShareURL: scheme + "://" + r.Host + "/share/" + shareID,
	})
}

// GetShare handles GET /api/share/{id}
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	shareID := r.PathValue("id")
	if shareID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "share id is required")
		return
	}

	share, found, err := h.registry.Get(shareID)
	if err != nil {
		slog.Error("failed to query share", "error", err, "share_id", shareID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Share not found")
		return
	}

	song, ok := h.catalog.ByID(share.SongID)
	if !ok {
		song = models.Song{ID: share.SongID}
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetShareResponse{
		Song:      song,
		CreatedAt: share.CreatedAt,
	})
}
