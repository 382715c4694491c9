// Package validator holds the syntactic credential checks used at registration.
// The checks never consult storage.
package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 16

	passwordSymbols = "!@#$%^&*()_-+=[]{}\\|'\"`;:,./<>?"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s has the shape local@domain.tld with no whitespace.
// RE2's \s is ASCII only, so Unicode spaces are rejected up front.
func IsValidEmail(s string) bool {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s is 8 to 16 characters long, is drawn only
// from letters, digits and the accepted symbols, and contains at least one of
// each: lowercase, uppercase, digit, symbol.
func IsValidPassword(s string) bool {
	if s == "" {
		return false
	}

	n := len([]rune(s))
	if n < MinPasswordLength || n > MaxPasswordLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}

	return lower && upper && digit && symbol
}

// IsValidName reports whether s has any non-whitespace content.
func IsValidName(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) != ""
}

// Register installs the authemail, authpassword and authname tags on v.
func Register(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		"authemail":    IsValidEmail,
		"authpassword": IsValidPassword,
		"authname":     IsValidName,
	}

	for tag, check := range rules {
		check := check
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// New returns a validator with the credential tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}
