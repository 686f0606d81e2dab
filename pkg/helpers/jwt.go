package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be verified:
// malformed input, a bad signature, an unexpected signing method, or an
// expired token when a TTL is configured.
var ErrInvalidToken = errors.New("invalid token")

// SessionManager signs and verifies session tokens. A single symmetric
// secret, fixed at construction, covers both directions; rotating it
// invalidates every previously issued token.
type SessionManager struct {
	Secret []byte
	TTL    time.Duration // zero disables expiry
}

var defaultManager *SessionManager

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	m := &SessionManager{Secret: []byte(secret), TTL: ttl}
	defaultManager = m
	return m
}

// DefaultSession returns the last constructed SessionManager (used for auto-wiring routes)
func DefaultSession() *SessionManager { return defaultManager }

type SessionClaims struct {
	Email  string `json:"email"`
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issue signs the given identity into an opaque bearer string.
func (m *SessionManager) Issue(email, userID string) (string, error) {
	claims := &SessionClaims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if m.TTL != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.TTL))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Verify decodes a token previously produced by Issue. Attacker-controlled
// input must never panic; every failure path collapses to ErrInvalidToken.
func (m *SessionManager) Verify(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
