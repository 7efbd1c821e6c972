package utils

import (
	"errors"
	"testing"
)

func TestHashPassword_NotPlaintext(t *testing.T) {
	const password = "Secr3t!abc"

	digest, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == password {
		t.Fatal("digest must not equal the plaintext password")
	}
	if digest == "" {
		t.Fatal("digest must not be empty")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	const password = "Secr3t!abc"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two digests of the same password must differ (random salt)")
	}
}

func TestVerifyPassword_Match(t *testing.T) {
	const password = "Secr3t!abc"

	digest, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := VerifyPassword(password, digest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected password to match its own digest")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("Secr3t!abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := VerifyPassword("wrong-password", digest)
	if err != nil {
		t.Fatalf("mismatch must not be reported as an error, got: %v", err)
	}
	if ok {
		t.Error("expected mismatch for a wrong password")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	ok, err := VerifyPassword("Secr3t!abc", "not-a-bcrypt-digest")
	if ok {
		t.Error("malformed digest must never verify")
	}
	if !errors.Is(err, ErrHashingFailed) {
		t.Errorf("expected ErrHashingFailed, got %v", err)
	}
}
