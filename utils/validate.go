package utils

import (
	"regexp"
	"strings"
)

var (
	// emailRegex accepts the usual name@domain.tld shapes without attempting
	// full RFC 5322 coverage.
	emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

	// phoneRegex accepts digits plus common formatting characters.
	phoneRegex = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// IsValidPhone reports whether s looks like a phone number. Formatting
// characters (spaces, dashes, parentheses, a leading +) are allowed; at least
// one digit is required.
func IsValidPhone(s string) bool {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return false
	}
	return strings.ContainsAny(s, "0123456789")
}

// NormalizeEmail lowercases and trims an email address for storage and lookups.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
