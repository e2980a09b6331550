package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/openshelf-server/internal/model"
)

// BcryptHasher implements model.PasswordHasher with bcrypt. Comparison is
// constant-time inside the library.
type BcryptHasher struct {
	cost int
}

var _ model.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given cost. Costs outside the
// bcrypt range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt hash of the plaintext password.
func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Compare checks the plaintext against a stored hash. Any mismatch maps
// to ErrInvalidCredentials so callers cannot distinguish failure causes.
func (h *BcryptHasher) Compare(hash []byte, password string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return model.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
