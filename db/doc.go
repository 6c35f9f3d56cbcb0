// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles driver selection and database schema creation.

# Opening a Database

Open picks the driver from the configured type:

	conn, dialect, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

sqlite (modernc.org/sqlite, pure Go) is the default and matches the
original single-file deployment; postgres (lib/pq) is available for
shared setups. The sqlite pool is capped at one connection since
sqlite allows a single writer.

# Schema Creation

CreateSchema initializes all required tables for the dialect:

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - votes: append-only vote log. The UNIQUE index on
    (ip_hash, day_of_week) is what enforces one vote per identity per
    day: the insert and the duplicate check are a single atomic step.
  - shares: insert-only share permalinks, random TEXT primary key.

No update or delete is ever issued against either table.
*/
package db
