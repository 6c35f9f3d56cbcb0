// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashIP creates a one-way hash of an IP address for privacy.
// HMAC-SHA256 keyed by the configured salt; the raw address is never stored.
// Deterministic: same address and salt produce the same 64-char hex digest
// across process restarts.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateShareID creates a random share identifier: 8 random bytes,
// hex-encoded to 16 characters.
func GenerateShareID() (string, error) {
	b := make([]byte, 8)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate share ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}
