package services

import (
	"errors"
	"time"

	"carrental/internal/domain"
	"carrental/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultSessionTTL = 24 * time.Hour

// SessionClaims is the payload of the signed session cookie.
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies HS256 session tokens.
type SessionManager struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (m SessionManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m SessionManager) ttl() time.Duration {
	if m.TTL > 0 {
		return m.TTL
	}
	return DefaultSessionTTL
}

// Issue signs a session for u and returns the token with its expiry.
func (m SessionManager) Issue(u models.User) (string, time.Time, error) {
	if len(m.Secret) == 0 {
		return "", time.Time{}, errors.New("session secret not configured")
	}
	now := m.now()
	exp := now.Add(m.ttl())
	claims := SessionClaims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Parse verifies token and returns the identity it carries.
func (m SessionManager) Parse(token string) (domain.RequestContext, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return domain.RequestContext{}, domain.UnauthorizedError{}
	}
	rc := domain.RequestContext{
		UserID:   domain.ID(claims.UserID),
		Username: claims.Username,
		Role:     claims.Role,
	}
	if !rc.Authenticated() {
		return domain.RequestContext{}, domain.UnauthorizedError{}
	}
	return rc, nil
}
