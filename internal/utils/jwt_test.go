package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewSessionTokenClaims(t *testing.T) {
	tok, err := NewSessionToken("test-secret", "user-1", "e1@x.com", "u1", 15)
	if err != nil {
		t.Fatalf("NewSessionToken() unexpected error: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("NewSessionToken() returned empty token")
	}
	if !tok.Exp.After(time.Now()) {
		t.Errorf("token expiry %v is not in the future", tok.Exp)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not parse back: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["sub"] != "user-1" {
		t.Errorf("sub = %v, want user-1", claims["sub"])
	}
	if claims["email"] != "e1@x.com" {
		t.Errorf("email = %v, want e1@x.com", claims["email"])
	}
	if claims["username"] != "u1" {
		t.Errorf("username = %v, want u1", claims["username"])
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("right-secret", "user-1", "e1@x.com", "u1", 15)
	if err != nil {
		t.Fatalf("NewSessionToken() unexpected error: %v", err)
	}
	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && parsed.Valid {
		t.Error("token validated under the wrong secret")
	}
}
