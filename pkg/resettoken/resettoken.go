// Package resettoken issues and verifies the short-lived signed tokens
// used by the forgot-password flow. These tokens are deliberately separate
// from sessions: possession of one proves nothing about being logged in.
package resettoken

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSigningMethod = errors.New("unexpected signing method")
	ErrInvalidToken         = errors.New("invalid or expired reset token")
)

type claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewService(secret string, ttl time.Duration, issuer string) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, issuer: issuer}
}

// Generate signs a reset token for the given user.
func (s *Service) Generate(userID int, email string) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Email:   email,
		Purpose: "password_reset",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}

// Verify parses a reset token and returns the user id and email it was
// issued for.
func (s *Service) Verify(tokenString string) (int, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.Purpose != "password_reset" {
		return 0, "", ErrInvalidToken
	}

	userID, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	return userID, c.Email, nil
}
