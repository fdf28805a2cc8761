// Package token issues and verifies stateless HS256 bearer tokens.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = 7 * 24 * time.Hour

// leeway tolerates small clock skew on exp/iat checks.
const leeway = 30 * time.Second

var (
	// ErrInvalid is returned for any token that fails signature, algorithm, expiry or subject checks.
	ErrInvalid = errors.New("invalid token")
)

// Manager signs and validates tokens with a server-held secret.
type Manager struct {
	signKey []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewManager constructs a Manager. ttl <= 0 selects DefaultTTL.
func NewManager(signKey []byte, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{signKey: signKey, ttl: ttl, now: time.Now}
}

// Issue creates a signed token for the given user and returns it with its expiry.
func (m *Manager) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.signKey)
	return signed, exp, err
}

// Verify checks signature and expiry and returns the embedded user id.
func (m *Manager) Verify(raw string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.signKey, nil
	},
		jwt.WithLeeway(leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalid
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalid
	}
	return id, nil
}
