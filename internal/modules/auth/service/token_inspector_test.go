package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fittrack/internal/modules/auth/service"
)

func TestExpiresAtReadsClaimWithoutVerification(t *testing.T) {
	t.Parallel()
	exp := time.Date(2027, 1, 2, 3, 4, 5, 0, time.UTC)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := service.TokenInspector{}.ExpiresAt(signed)
	if err != nil {
		t.Fatalf("expires at: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %s, got %s", exp, got)
	}
}

func TestExpiresAtRejectsGarbageAndMissingClaim(t *testing.T) {
	t.Parallel()
	if _, err := (service.TokenInspector{}).ExpiresAt("garbage"); err == nil {
		t.Fatalf("garbage token must fail")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "ana"})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := (service.TokenInspector{}).ExpiresAt(signed); err == nil {
		t.Fatalf("token without exp must fail")
	}
}
