// Package auth issues and verifies the signed session tokens that back
// every authenticated request.
package auth

import (
	"errors"
	"time"

	"helpdesk/backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed input, a
// signature that does not match, and an elapsed expiry. Callers never need
// to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens with a process-wide secret.
// The secret comes from configuration at construction time and is never read
// from ambient state afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for a validated identity. The token carries
// id, email, name, role and the derived isAdmin flag; never any password
// material.
func (t *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.FullName,
		Role:    user.Role,
		IsAdmin: user.IsAdmin(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			Issuer:    "helpdesk-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the decoded claims.
// Any failure is reported as ErrInvalidToken.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
