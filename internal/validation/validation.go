// Package validation holds the input checks shared by the shop managers.
package validation

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the longest string accepted by IsValidString when no
// explicit bound is given.
const DefaultMaxLength = 50

// IsValidString reports whether s is non-empty and at most maxLen characters
// long. A non-positive maxLen means DefaultMaxLength.
func IsValidString(s string, maxLen int) bool {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= maxLen
}

// IsValidEmail only checks for an "@"; it is not an RFC 5322 validator.
func IsValidEmail(email string) bool {
	if !IsValidString(email, DefaultMaxLength) {
		return false
	}
	return strings.Contains(email, "@")
}
