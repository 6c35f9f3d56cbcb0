// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Song of the Week server.

Song of the Week exposes one song per weekday, lets each visitor cast a
single like/dislike per day (deduplicated by hashed IP), and reveals an
aggregated ranking of the week's songs on Sunday. Any song can be turned
into a shareable permalink.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 3000 -d votes.db -songs data/songs.json

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - IP_HASH_SALT (-ip-salt): Secret salt for identity hashing. There is no
    default; startup fails without it.

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path (default: votes.db) or postgres URL
  - SONGS_PATH (-songs): songs.json location (default: data/songs.json)
  - STATIC_DIR (-static): frontend directory to serve at / (default: off)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - votes: the vote ledger (duplicate enforcement, weekly ranking)
  - shares: the share registry (permalink issue and lookup)
  - catalog: the read-only seven-song week, loaded at startup
  - clock: ISO day-of-week derivation (1=Monday .. 7=Sunday)
  - auth: IP hashing and share id generation
  - handlers: HTTP request handlers (today, vote, ranking, share)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - models: Request/response and domain types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
