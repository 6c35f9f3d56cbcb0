// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Song of the Week API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - TodayHandler: today's song + caller vote status, health check
  - VoteHandler: like/dislike casting
  - RankingHandler: the weekly ranking (sealed until Sunday)
  - ShareHandler: share permalink creation and resolution

	todayHandler := handlers.NewTodayHandler(ledger, cat)

Handlers validate input (song ids against the catalog, vote types against
the like/dislike enum) before anything reaches the ledger or registry.

# Voting Flow

	GET  /api/today   → day index, song, has_voted for the caller's IP
	POST /api/vote    → records a vote; 409 when the identity voted today

The caller's identity is its salted IP hash; a client that clears cookies
or switches browsers still counts as the same voter for the day.

# Ranking

	GET /api/ranking  → 403 until day 7, then days 1-6 aggregated

Each entry is enriched with catalog metadata; a vote for a song id that
has left the catalog is kept with a placeholder title.

# Shares

	POST /api/share      → {share_id, share_url}
	GET  /api/share/{id} → song + created_at, 404 on unknown id
*/
package handlers
