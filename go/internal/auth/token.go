// Package auth issues and verifies bearer tokens, hashes passwords and carries
// the authenticated user through request contexts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
)

const DefaultTokenTTL = 24 * time.Hour

// Claims is the payload of a tipster bearer token
type Claims struct {
	jwt.RegisteredClaims
}

// TokenProvider signs and parses HS256 tokens whose subject is a user id
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewTokenProvider(secret string, ttl time.Duration, clock clockwork.Clock) *TokenProvider {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenProvider{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue returns a signed token for userID and its expiry.
func (p *TokenProvider) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := p.clock.Now()
	expiresAt := now.Add(p.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the subject. Every failure
// matches apperrors.ErrUnauthorized.
func (p *TokenProvider) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.clock.Now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
		}
		return uuid.Nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", apperrors.ErrUnauthorized)
	}
	return userID, nil
}
