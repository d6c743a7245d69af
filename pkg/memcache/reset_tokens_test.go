package mem

import (
	"testing"
	"time"
)

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "maria@example.com", time.Minute)

	if got := store.Consume("tok"); got != "maria@example.com" {
		t.Errorf("Consume = %q, want the stored email", got)
	}
	if got := store.Consume("tok"); got != "" {
		t.Errorf("second Consume = %q, want empty", got)
	}
}

func TestConsumeExpired(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "maria@example.com", -time.Second)

	if got := store.Consume("tok"); got != "" {
		t.Errorf("expired token consumed: %q", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "maria@example.com", time.Minute)

	if email, ok := store.Peek("tok"); !ok || email != "maria@example.com" {
		t.Fatalf("Peek = %q, %v", email, ok)
	}
	if got := store.Consume("tok"); got != "maria@example.com" {
		t.Errorf("Peek consumed the token")
	}
}

func TestConsumeUnknownToken(t *testing.T) {
	store := NewResetTokens()
	if got := store.Consume("missing"); got != "" {
		t.Errorf("Consume(missing) = %q, want empty", got)
	}
}
