// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielhkuo/song-of-the-week/models"
)

// Catalog is the read-only list of the week's seven songs, indexed by
// ISO day (1=Monday .. 7=Sunday). Loaded once at startup.
type Catalog struct {
	songs []models.Song
	byID  map[string]models.Song
}

type songsFile struct {
	Songs []models.Song `json:"songs"`
}

// New builds a catalog from an ordered slice of exactly seven songs.
func New(songs []models.Song) (*Catalog, error) {
	if len(songs) != 7 {
		return nil, fmt.Errorf("catalog requires exactly 7 songs, got %d", len(songs))
	}

	byID := make(map[string]models.Song, len(songs))
	for _, s := range songs {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog song %q has empty id", s.Title)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("catalog has duplicate song id %q", s.ID)
		}
		byID[s.ID] = s
	}

	return &Catalog{songs: songs, byID: byID}, nil
}

// Load reads and validates a songs.json file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read songs file: %w", err)
	}

	var f songsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse songs file: %w", err)
	}

	return New(f.Songs)
}

// ByDay returns the song for an ISO day index 1-7.
func (c *Catalog) ByDay(day int) (models.Song, bool) {
	if day < 1 || day > 7 {
		return models.Song{}, false
	}
	return c.songs[day-1], true
}

// ByID looks up a song by its catalog id.
func (c *Catalog) ByID(id string) (models.Song, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Songs returns the week's songs in day order.
func (c *Catalog) Songs() []models.Song {
	return c.songs
}
