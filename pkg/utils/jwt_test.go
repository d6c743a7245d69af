package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.CreateToken(userID, "provider")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "provider" {
		t.Errorf("Role = %s, want provider", claims.Role)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).CreateToken(uuid.New(), "client")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := NewJWTManager("secret-b", time.Hour).ValidateToken(token); err == nil {
		t.Errorf("token signed with another secret validated")
	}
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	token, err := manager.CreateToken(uuid.New(), "client")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Errorf("expired token validated")
	}
}

func TestJWTGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	if _, err := manager.ValidateToken("not-a-token"); err == nil {
		t.Errorf("garbage token validated")
	}
}
