// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects an issued access token and its expiry.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // for diagnostics
}

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID // PK, assigned by the store
	Name         string
	Email        string // unique
	PasswordHash string // bcrypt digest
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Note is a titled checklist entry owned by a single user.
type Note struct {
	ID        uuid.UUID
	UserID    uuid.UUID // FK -> users.id
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotePatch carries optional note fields; nil means "leave unchanged".
type NotePatch struct {
	Title     *string
	Completed *bool
}

// Todo is a standalone entry with no owner.
type Todo struct {
	ID        uuid.UUID
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch carries optional todo fields; nil means "leave unchanged".
type TodoPatch struct {
	Title     *string
	Completed *bool
}
