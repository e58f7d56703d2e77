// Package jwtmw provides JWT token generation, verification, and the Gin
// middleware guarding authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned when a token is malformed, carries a bad
	// signature, or was signed with an unexpected algorithm.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims carries the identity extracted from a verified token.
type Claims struct {
	UserID   string
	Username string
}

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user using the
	// generator's default expiration.
	GenerateToken(userID, username string) (string, error)
}

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// ParseToken verifies a token's signature and expiry and returns its claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// generator implements the Generator and Verifier interfaces.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and
// default expiration duration.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *generator) GenerateToken(userID, username string) (string, error) {
	return g.GenerateTokenWithTTL(userID, username, g.expiration)
}

// GenerateTokenWithTTL creates a signed JWT token expiring after the given ttl
// instead of the generator's default.
func (g *generator) GenerateTokenWithTTL(userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"uid": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of a token and extracts its
// identity claims. Expired tokens yield ErrTokenExpired; every other failure
// yields ErrTokenInvalid.
func (g *generator) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Username = sub
	}
	if uid, ok := mapClaims["uid"].(string); ok {
		claims.UserID = uid
	}
	return claims, nil
}
