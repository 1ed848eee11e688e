package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "session-123", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "session-123" {
		t.Errorf("session id = %q, want session-123", claims.SessionID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "session-123", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	claims := &Claims{
		SessionID: "session-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestGenerateTokenDefaultTTL(t *testing.T) {
	// a non-positive TTL falls back to 24 hours
	token, err := GenerateToken("secret", "s", 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !claims.ExpiresAt.After(time.Now().Add(23 * time.Hour)) {
		t.Error("default TTL not applied")
	}
}
