package utils

import "testing"

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret-ward-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-ward-pass" {
		t.Fatal("hash must not equal the plain password")
	}

	if !ComparePassword(hash, "s3cret-ward-pass") {
		t.Error("correct password should compare true")
	}
	if ComparePassword(hash, "wrong-pass") {
		t.Error("wrong password should compare false")
	}
}
