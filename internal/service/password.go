package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/inkpost/backend/internal/apperror"
)

// PasswordHasher wraps bcrypt with a configurable cost. bcrypt
// generates a fresh salt per call and embeds it in the digest, so
// Verify needs nothing beyond the digest itself.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted digest of plaintext. Failure here is an
// internal fault, not a user error.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is a
// normal false result, never an error.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
