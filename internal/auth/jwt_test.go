package auth

import (
	"testing"

	"github.com/avelaro/bookstore-be/internal/models"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("super-secret")
	user := models.User{ID: "user-123", Email: "a@x.com"}

	tok, err := a.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := a.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id mismatch: got %q want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, user.Email)
	}
}

func TestVerify_NoExpiryTokenStaysValid(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("k")
	tok, err := a.Issue(models.User{ID: "u1", Email: "u1@x.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := a.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAuthenticator("right-secret").Issue(models.User{ID: "u2", Email: "u2@x.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewAuthenticator("wrong-secret").Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewAuthenticator("k").Verify("not.a.jwt")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
