// Package session issues and verifies the signed tokens that identify a
// logged-in user between requests.
//
// A token carries the user id as subject, the role, a unique id (jti) and an
// expiry. Logging out revokes the jti until the token would have expired
// anyway, see Revoker.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is how long a session token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// CookieName is the cookie the token is delivered in.
const CookieName = "auth-token"

const issuer = "cafeteria"

// Revoker remembers logged-out token ids.
type Revoker interface {
	// Revoke marks jti as revoked until the given instant.
	Revoke(ctx context.Context, jti string, until time.Time) error

	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Token is an issued or verified session token.
type Token struct {
	Raw       string
	ID        string
	Actor     user.Actor
	ExpiresAt time.Time
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager requires a non-empty secret. A non-positive ttl falls back to
// DefaultTTL.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("session secret")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of m that reads the time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	clone := *m
	clone.now = now
	return &clone
}

// Issue signs a new token for actor.
func (m *Manager) Issue(actor user.Actor) (Token, error) {
	if err := actor.Validate(); err != nil {
		return Token{}, err
	}

	now := m.now().UTC()
	expiresAt := now.Add(m.ttl).Truncate(time.Second)
	jti := uuid.NewString()

	c := claims{
		Role: actor.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			Subject:   strconv.FormatInt(actor.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign session token: %w", err)
	}

	return Token{Raw: raw, ID: jti, Actor: actor, ExpiresAt: expiresAt}, nil
}

// Parse verifies raw and returns its contents. Every failure is reported as
// *errs.UnauthenticatedError.
func (m *Manager) Parse(raw string) (Token, error) {
	if raw == "" {
		return Token{}, errs.NewUnauthenticatedError("missing session token")
	}

	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Token{}, errs.NewUnauthenticatedErrorWithCause("session expired", err)
		}
		return Token{}, errs.NewUnauthenticatedErrorWithCause("invalid session token", err)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Token{}, errs.NewUnauthenticatedErrorWithCause("invalid session subject", err)
	}
	role, err := user.ParseRole(c.Role)
	if err != nil {
		return Token{}, errs.NewUnauthenticatedErrorWithCause("invalid session role", err)
	}
	if c.ID == "" {
		return Token{}, errs.NewUnauthenticatedError("session token has no id")
	}

	return Token{
		Raw:       raw,
		ID:        c.ID,
		Actor:     user.Actor{ID: userID, Role: role},
		ExpiresAt: c.ExpiresAt.UTC(),
	}, nil
}
