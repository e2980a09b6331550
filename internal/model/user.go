package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher hashes plaintext passwords and verifies them against a
// stored hash. Compare must not leak timing information about the hash.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

// User represents a registered account. Immutable after creation except
// for deletion.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
