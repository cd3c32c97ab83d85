package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dropspace/dropspace/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret", false, time.Hour)

	token, err := auth.GenerateJWT(&model.User{ID: "user-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := auth.VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}

	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v, want user-1", claims["user_id"])
	}
	if claims["email"] != "a@example.com" {
		t.Errorf("email = %v, want a@example.com", claims["email"])
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	auth := NewAuthService("test-secret", false, time.Hour)

	tests := []string{
		"",
		"not-a-token",
		"eyJhbGciOiJIUzI1NiJ9.e30.",
	}

	for _, token := range tests {
		_, err := auth.VerifyJWT(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("VerifyJWT(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	signer := NewAuthService("secret-a", false, time.Hour)
	verifier := NewAuthService("secret-b", false, time.Hour)

	token, err := signer.GenerateJWT(&model.User{ID: "user-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	_, err = verifier.VerifyJWT(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyJWTRejectsExpired(t *testing.T) {
	auth := NewAuthService("test-secret", false, -time.Minute)

	token, err := auth.GenerateJWT(&model.User{ID: "user-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	_, err = auth.VerifyJWT(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}
