package helpers

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plain password")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != HashCost {
		t.Errorf("cost = %d, want %d", cost, HashCost)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if err := VerifyPassword(hash, "secret123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}

	err = VerifyPassword(hash, "wrong")
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("wrong password: got %v, want ErrMismatchedHashAndPassword", err)
	}
}
