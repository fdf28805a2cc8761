// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/notes-api/internal/model"
)

// UserRepository provides access to registered users.
type UserRepository interface {
	// Create inserts a new user and fills store-assigned fields (ID, timestamps).
	// Returns errs.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, u *model.User) error
	// GetByEmail loads a user by exact email match.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
