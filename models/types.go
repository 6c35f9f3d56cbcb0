// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Vote type constants
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// Request types

type CastVoteRequest struct {
	SongID   string `json:"song_id"`
	VoteType string `json:"vote_type"`
}

type CreateShareRequest struct {
	SongID string `json:"song_id"`
}

// Response types

type TodayResponse struct {
	Day      int  `json:"day"`
	Song     Song `json:"song"`
	HasVoted bool `json:"has_voted"`
}

type CastVoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RankingResponse struct {
	Ranking []RankedSong `json:"ranking"`
}

type CreateShareResponse struct {
	ShareID  string `json:"share_id"`
	ShareURL string `json:"share_url"`
}

type GetShareResponse struct {
	Song      Song  `json:"song"`
	CreatedAt int64 `json:"created_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Day    int    `json:"day"`
}

// Domain types

// Song is a catalog entry. The catalog holds exactly seven songs,
// one per ISO weekday.
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	EmbedURL string `json:"embedUrl"`
}

// Vote is an immutable record of one like/dislike. Never updated or
// deleted once written.
type Vote struct {
	ID        int64  `json:"id"`
	SongID    string `json:"song_id"`
	VoteType  string `json:"vote_type"`
	IPHash    string `json:"-"`         // Never expose in JSON
	Timestamp int64  `json:"timestamp"` // epoch millis
	DayOfWeek int    `json:"day_of_week"`
}

// Share is a durable pointer from a random id to a song. No expiry.
type Share struct {
	ID        string `json:"id"`
	SongID    string `json:"song_id"`
	CreatedAt int64  `json:"created_at"` // epoch millis
}

// RankingEntry is one row of the weekly ranking aggregate.
type RankingEntry struct {
	SongID     string `json:"song_id"`
	Likes      int    `json:"likes"`
	Dislikes   int    `json:"dislikes"`
	TotalVotes int    `json:"total_votes"`
}

// RankedSong is a ranking entry enriched with its catalog song for display.
type RankedSong struct {
	RankingEntry
	Song Song `json:"song"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
