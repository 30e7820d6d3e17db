// Package crypto implements the credential hashing used by the
// authentication flow. Password digests are bcrypt strings with the salt and
// cost embedded, so verification needs no state beyond the digest itself.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] using bcrypt with the
// default cost.
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted bcrypt digest from password. bcrypt generates a
// fresh random salt per call, so hashing the same input twice produces
// different digests.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify recomputes the digest using the salt embedded in digest and
// compares in constant time. Any failure, including a malformed digest,
// reports false.
func (h *bcryptHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
