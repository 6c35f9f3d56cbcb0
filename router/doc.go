// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Song of the Week API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ledger, registry, cat, cfg)

# Endpoints

Health:

	GET /health

Daily song and voting:

	GET  /api/today  - Today's song and the caller's vote status
	POST /api/vote   - Cast a like/dislike (one per identity per day)

Ranking:

	GET /api/ranking - Weekly ranking, 403 until day 7

Shares:

	POST /api/share      - Create a share permalink
	GET  /api/share/{id} - Resolve a permalink

All /api/ routes are rate limited (20/minute per IP) and logged.
When a static directory is configured the frontend is served at /.
*/
package router
