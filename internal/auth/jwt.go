// Package auth issues and verifies signed share-link tokens that grant read
// access to a single group.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("share token required")
)

const tokenIssuer = "groupledger"

// ShareTokenManager handles share-link token generation and validation.
type ShareTokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

// ShareClaims represents the JWT claims of a share link.
type ShareClaims struct {
	GroupID string `json:"group_id"`
	jwt.RegisteredClaims
}

// NewShareTokenManager creates a manager signing tokens with secretKey.
// Tokens remain valid for tokenDuration after they are issued.
func NewShareTokenManager(secretKey string, tokenDuration time.Duration) *ShareTokenManager {
	return &ShareTokenManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

// Generate creates a share token for groupID and returns it with its expiry.
func (m *ShareTokenManager) Generate(groupID string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.tokenDuration)
	claims := &ShareClaims{
		GroupID: groupID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   groupID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a share token, returning its claims if valid.
func (m *ShareTokenManager) Validate(tokenString string) (*ShareClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&ShareClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*ShareClaims)
	if !ok || !token.Valid || claims.GroupID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
