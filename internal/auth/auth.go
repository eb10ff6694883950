// Package auth implements the admin authentication flow: a password login
// that issues an HS256 token, and bearer-token verification for the write
// endpoints. A configured static admin token is accepted as an alternative
// credential for automation.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid authentication token")

type Service struct {
	secret     []byte
	adminToken string
	ttl        time.Duration
}

func New(secret, adminToken string, ttl time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		adminToken: adminToken,
		ttl:        ttl,
	}
}

// IssueToken creates a signed token for the given subject.
func (s *Service) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a bearer credential and returns its subject. The static
// admin token short-circuits signature verification.
func (s *Service) Verify(credential string) (string, error) {
	if credential == "" {
		return "", ErrInvalidToken
	}
	if s.adminToken != "" && credential == s.adminToken {
		return "admin", nil
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
