package services

import "testing"

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  User@Example.COM  "); got != "user@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2secret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "hunter2secret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatal("wrong password accepted")
	}
}
