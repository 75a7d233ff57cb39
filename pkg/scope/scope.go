package scope

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the verified content of an access token.
type Claims struct {
	UserID    int64
	JTI       string
	ExpiresAt time.Time
}

// Manager issues and verifies signed access tokens.
type Manager interface {
	Generate(userID int64) (string, error)
	Verify(token string) (Claims, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
}

// New creates a Manager signing HS256 tokens with the given secret.
func New(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &implManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate issues a token whose subject is the user ID. Each token carries a
// unique JTI so it can be individually revoked.
func (m *implManager) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
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

// Verify parses and validates a token string.
func (m *implManager) Verify(tokenString string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var expiresAt time.Time
	if registered.ExpiresAt != nil {
		expiresAt = registered.ExpiresAt.Time
	}

	return Claims{
		UserID:    userID,
		JTI:       registered.ID,
		ExpiresAt: expiresAt,
	}, nil
}
