// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CastVoteRequest: song_id, vote_type
  - CreateShareRequest: song_id

# Response Types

  - TodayResponse: day, song, has_voted
  - CastVoteResponse: success, message
  - RankingResponse: ranking ([]RankedSong)
  - CreateShareResponse: share_id, share_url
  - GetShareResponse: song, created_at
  - HealthResponse: status, day
  - ErrorResponse: error, message

# Domain Types

  - Song: one catalog entry (id, title, artist, embedUrl)
  - Vote: immutable like/dislike record; the identity hash never
    serializes to JSON
  - Share: permalink record, no expiry
  - RankingEntry: per-song like/dislike/total aggregate
  - RankedSong: RankingEntry enriched with its Song

# Constants

Vote types: VoteLike ("like"), VoteDislike ("dislike").
Timestamps are epoch milliseconds throughout, matching the wire format
the frontend has always consumed.
*/
package models
