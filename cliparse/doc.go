// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: sqlite file path or postgres connection string
  - IPHashSalt: Secret for identity hashing (required, no default)
  - SongsPath: Location of songs.json (default: data/songs.json)
  - StaticDir: Frontend directory served at / (optional)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-songs    songs.json path
	-static   Static frontend directory
	-ip-salt  IP hashing salt

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SONGS_PATH    → -songs
	STATIC_DIR    → -static
	IP_HASH_SALT  → -ip-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags fails when IP_HASH_SALT is missing. Deliberately no fallback
salt: a known default would make every stored identity hash reversible.
*/
package cliparse
