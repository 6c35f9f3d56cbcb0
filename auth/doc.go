// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity hashing and share id generation.

# IP Hashing

Raw client addresses are never stored. HashIP maps an address to an
opaque identity:

	hash := auth.HashIP(ipAddress, salt)

HMAC-SHA256 keyed by the configured salt, hex-encoded to 64 characters.
Deterministic across restarts, so the one-vote-per-day rule survives a
server bounce. The salt is mandatory configuration; without it the
hashes would be a dictionary lookup away from the original addresses.

# Share IDs

Share permalinks use random identifiers:

	id, err := auth.GenerateShareID()  // 16 hex characters

8 bytes from crypto/rand - unguessable, and collisions are negligible
at this volume (the shares registry still retries defensively).
*/
package auth
