// Package password wraps bcrypt hashing behind a small fixed-cost API so the
// cost factor is chosen in exactly one place.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost keeps verification in the tens-of-milliseconds range on
// current hardware.
const DefaultCost = 12

// Hasher produces and verifies salted bcrypt hashes.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside
// bcrypt's supported range fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted one-way hash of plaintext. Each call salts
// independently, so equal inputs yield distinct hashes.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hashed. bcrypt's comparison is
// constant-time over the digest.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
