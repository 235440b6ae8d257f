package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, claims, err := GenerateToken(secret, 7, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti")
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != 7 || parsed.ID != claims.ID {
		t.Fatalf("unexpected claims %+v", parsed)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(secret, 7, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken([]byte("other"), token); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParse_Expired(t *testing.T) {
	token, _, err := GenerateToken(secret, 7, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, token); err == nil {
		t.Fatalf("expected expired error")
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	_, a, _ := GenerateToken(secret, 1, time.Minute)
	_, b, _ := GenerateToken(secret, 1, time.Minute)
	if a.ID == b.ID {
		t.Fatalf("jti should be unique, got %s twice", a.ID)
	}
}
