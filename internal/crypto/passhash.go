// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured (2^10 rounds).
const DefaultCost = 10

// maxPasswordLen is the bcrypt input limit; longer inputs are rejected, not truncated.
const maxPasswordLen = 72

// ErrPasswordTooLong is returned by Hash for inputs over 72 bytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// Hasher hashes and verifies passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost; out-of-range values fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost reports the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns the bcrypt digest of password. The salt is embedded in the digest.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordLen {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Verify reports whether password matches the stored digest.
func (h *Hasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
