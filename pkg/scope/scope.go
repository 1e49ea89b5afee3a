package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload carries the request identity decoded from an access token.
type Payload struct {
	UserID string
}

// Manager issues and verifies access tokens.
type Manager interface {
	IssueToken(userID string) (string, error)
	Verify(token string) (Payload, error)
}

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a Manager signing HS256 tokens with the given secret.
func NewJWTManager(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &jwtManager{secret: []byte(secret), ttl: ttl}, nil
}

func (m *jwtManager) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *jwtManager) Verify(tokenString string) (Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{UserID: claims.Subject}, nil
}
