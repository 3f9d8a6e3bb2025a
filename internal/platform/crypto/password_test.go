package crypto

import "testing"

func TestValidatePasswordStrength_ValidPasswords(t *testing.T) {
	validPasswords := []string{
		"secret",
		"Password1$",
		"correct horse battery staple",
	}

	for _, password := range validPasswords {
		if err := ValidatePasswordStrength(password); err != nil {
			t.Errorf("Password %s should be valid but got error: %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_TooShort(t *testing.T) {
	for _, password := range []string{"abc", "12345", "a b"} {
		if err := ValidatePasswordStrength(password); err != ErrPasswordTooShort {
			t.Errorf("Expected ErrPasswordTooShort for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_Blank(t *testing.T) {
	for _, password := range []string{"", "      "} {
		if err := ValidatePasswordStrength(password); err != ErrPasswordBlank {
			t.Errorf("Expected ErrPasswordBlank for %q, got %v", password, err)
		}
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == "secret1" {
		t.Error("Expected hash to differ from plain text")
	}
	if !VerifyPassword(hash, "secret1") {
		t.Error("Expected password to verify")
	}
	if VerifyPassword(hash, "secret2") {
		t.Error("Expected wrong password to fail")
	}
}
