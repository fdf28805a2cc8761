// Package service contains application services for authentication, notes and todos.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgcrypto "github.com/and161185/notes-api/internal/crypto"
	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/repository"
	"github.com/gofrs/uuid/v5"
)

var (
	// ErrFieldsRequired is returned by Register when name, email or password is empty.
	ErrFieldsRequired = fmt.Errorf("%w: name, email and password are required", errs.ErrValidation)
	// ErrPasswordTooLong is returned by Register for passwords the hasher cannot accept.
	ErrPasswordTooLong = fmt.Errorf("%w: password exceeds 72 bytes", errs.ErrValidation)
)

// PasswordHasher is a one-way hash + verify pair.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer mints signed bearer tokens bound to a user id.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, name, email, password string) (model.User, error)
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (model.Tokens, model.User, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer

	// dummyHash is compared against on unknown emails so both login failure paths cost one bcrypt run.
	dummyHash string
}

// NewAuthService constructs AuthService with required dependencies.
// It fails when the hasher cannot produce the dummy hash used on unknown-email logins.
func NewAuthService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) (*AuthServiceImpl, error) {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &AuthServiceImpl{users: users, hasher: hasher, tokens: tokens, dummyHash: dummy}, nil
}

// Register validates input, rejects taken emails, hashes the password and stores the user.
// The returned user still carries the hash; callers must not expose it.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (model.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return model.User{}, ErrFieldsRequired
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return model.User{}, errs.ErrAlreadyExists
	case !errors.Is(err, errs.ErrNotFound):
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgcrypto.ErrPasswordTooLong) {
			return model.User{}, ErrPasswordTooLong
		}
		return model.User{}, err
	}

	u := &model.User{Name: name, Email: email, PasswordHash: hash}
	// Create maps a unique-index hit to ErrAlreadyExists when a concurrent registration won.
	if err := s.users.Create(ctx, u); err != nil {
		return model.User{}, err
	}
	return *u, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// produce the same errs.ErrInvalidCredentials.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (model.Tokens, model.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			_ = s.hasher.Verify(s.dummyHash, password)
			return model.Tokens{}, model.User{}, errs.ErrInvalidCredentials
		}
		return model.Tokens{}, model.User{}, err
	}
	if !s.hasher.Verify(u.PasswordHash, password) {
		return model.Tokens{}, model.User{}, errs.ErrInvalidCredentials
	}

	access, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *u, nil
}
