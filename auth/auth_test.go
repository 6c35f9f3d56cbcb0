package auth

import (
	"encoding/hex"
	"testing"
)

func TestHashIPDeterministic(t *testing.T) {
	h1 := HashIP("192.168.1.10", "salt-a")
	h2 := HashIP("192.168.1.10", "salt-a")

	if h1 != h2 {
		t.Errorf("same address and salt produced different hashes: %s vs %s", h1, h2)
	}
}

func TestHashIPDistinctAddresses(t *testing.T) {
	h1 := HashIP("192.168.1.10", "salt-a")
	h2 := HashIP("192.168.1.11", "salt-a")

	if h1 == h2 {
		t.Error("different addresses produced the same hash")
	}
}

func TestHashIPSaltMatters(t *testing.T) {
	h1 := HashIP("192.168.1.10", "salt-a")
	h2 := HashIP("192.168.1.10", "salt-b")

	if h1 == h2 {
		t.Error("different salts produced the same hash")
	}
}

func TestHashIPFormat(t *testing.T) {
	h := HashIP("10.0.0.1", "salt")

	if len(h) != 64 {
		t.Errorf("expected 64 hex chars (256 bits), got %d", len(h))
	}
	if _, err := hex.DecodeString(h); err != nil {
		t.Errorf("hash is not valid hex: %v", err)
	}
}

func TestGenerateShareID(t *testing.T) {
	id, err := GenerateShareID()
	if err != nil {
		t.Fatalf("GenerateShareID failed: %v", err)
	}

	if len(id) != 16 {
		t.Errorf("expected 16 hex chars (8 bytes), got %d: %s", len(id), id)
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("share id is not valid hex: %v", err)
	}
}

func TestGenerateShareIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateShareID()
		if err != nil {
			t.Fatalf("GenerateShareID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate share id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}
