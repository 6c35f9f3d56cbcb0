// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votes implements the append-only vote ledger.

# One Vote Per Day

Each identity (salted IP hash) gets one like/dislike per ISO day. The
rule is enforced by the storage layer, not by a check-then-insert: the
UNIQUE index on (ip_hash, day_of_week) turns a duplicate into a driver
conflict that RecordVote maps to ErrDuplicateVote. Two concurrent
requests from the same identity therefore produce exactly one row.

	err := ledger.RecordVote(songID, voteType, clientIP)
	if errors.Is(err, votes.ErrDuplicateVote) { ... }

HasVotedToday exists for the UI (disabling buttons up front) and is
advisory only; the insert is the authority.

# Weekly Ranking

WeeklyRanking aggregates days 1-6, ordered by likes descending and ties
broken by fewer dislikes. Sunday votes never enter the ranking - the
ranking revealed on Sunday covers the six days before it. Rows are
vote-driven: a song nobody voted on is simply absent.

Votes are immutable. Nothing in this package updates or deletes a row.
*/
package votes
