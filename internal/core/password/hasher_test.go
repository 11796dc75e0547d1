package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Tests use bcrypt.MinCost to keep the suite fast; production cost is tuned
// separately.
func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "pw123456" {
		t.Fatalf("hash equals plaintext")
	}
	if strings.Contains(hashed, "pw123456") {
		t.Fatalf("hash contains plaintext")
	}

	if !h.Verify("pw123456", hashed) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("pw123457", hashed) {
		t.Fatalf("Verify accepted a wrong password")
	}
	if h.Verify("", hashed) {
		t.Fatalf("Verify accepted an empty password")
	}
}

func TestHasher_SaltsIndependently(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(1000)
	if h.cost != DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", h.cost)
	}

	h = NewHasher(bcrypt.MinCost)
	if h.cost != bcrypt.MinCost {
		t.Fatalf("expected MinCost to be honoured, got %d", h.cost)
	}
}
