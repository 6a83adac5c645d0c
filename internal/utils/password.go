package utils

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ErrWeakPassword is returned by ValidatePassword for passwords that do not
// meet the policy.
var ErrWeakPassword = errors.New("password must be at least 8 characters with one uppercase letter and one digit")

// ValidatePassword enforces the signup/change-password policy: minimum eight
// characters, at least one uppercase letter and at least one digit.
func ValidatePassword(plain string) error {
	var hasUpper, hasDigit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if len(plain) < 8 || !hasUpper || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
