// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package shares implements the share permalink registry: random
// 16-hex-char ids pointing at a song, insert-only, no expiry. Lookup of
// an unknown id reports absence through a bool rather than an error.
package shares
