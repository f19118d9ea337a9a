// utils/validation.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// NormalizeEmail canonicalizes an email for storage and comparison.
// Uniqueness is case-insensitive and ignores surrounding whitespace, so the
// application check and the database unique index agree on every engine.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether s is a well-formed email address. Handlers run
// this after NormalizeEmail, so padded input is judged on its trimmed form
// rather than rejected for the padding.
func ValidEmail(s string) bool {
	return emailValidator.Var(s, "email") == nil
}
