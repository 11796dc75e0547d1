package token

import (
	"testing"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleClient,
	}
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	raw, expiresAt, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected a token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	claims, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestIssuer_Expired(t *testing.T) {
	iss := NewIssuer("secret", time.Nanosecond)

	raw, _, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := iss.Verify(raw); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	raw, _, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	other := NewIssuer("different", time.Hour)
	if _, err := other.Verify(raw); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	if _, err := iss.Verify("not-a-token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestIssuer_Expiry_WithoutVerification(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	raw, expiresAt, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// A different secret can still read the expiry; logout blacklists tokens
	// it cannot necessarily verify.
	other := NewIssuer("different", time.Hour)
	got, err := other.Expiry(raw)
	if err != nil {
		t.Fatalf("Expiry returned error: %v", err)
	}
	if !got.Equal(expiresAt.Truncate(time.Second)) {
		t.Fatalf("expiry mismatch: got %v want %v", got, expiresAt.Truncate(time.Second))
	}

	if _, err := other.Expiry("garbage"); err != domain.ErrMalformedToken {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	iss := NewIssuer("secret", 0)
	if iss.TTL() != time.Hour {
		t.Fatalf("expected 1h default TTL, got %v", iss.TTL())
	}
}
