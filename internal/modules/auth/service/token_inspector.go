package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInspector reads the expiry claim out of a stored bearer token.
// The signature is deliberately not verified: the client trusts the
// server-issued token's shape and leaves authorization to the API.
type TokenInspector struct{}

// ExpiresAt returns the token's exp claim. Tokens without one, or that
// cannot be parsed at all, yield an error; callers treat that as a
// corrupt credential.
func (TokenInspector) ExpiresAt(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no usable exp claim")
	}
	return exp.Time, nil
}
