package services_test

import (
	"testing"

	"luckroll-backend/internal/config"
	"luckroll-backend/internal/services"
)

func TestJWTRoundTrip(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret"})

	token, err := jwtService.GenerateToken("admin", "session-1")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("Generated token is empty")
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username mismatch: got %q", claims.Username)
	}
	if claims.SessionID != "session-1" {
		t.Errorf("Session ID mismatch: got %q", claims.SessionID)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := services.NewJWTService(&config.Config{JWTSecret: "secret-a"})
	verifier := services.NewJWTService(&config.Config{JWTSecret: "secret-b"})

	token, err := issuer.GenerateToken("admin", "session-1")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("Token signed with a different secret validated")
	}
}

func TestJWTGarbageToken(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret"})

	if _, err := jwtService.ValidateToken("not.a.token"); err == nil {
		t.Error("Garbage token validated")
	}
}
