package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// ValidateUsername checks whether a username is acceptable
func ValidateUsername(username string) (bool, string) {
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-32 characters long and contain only letters, numbers and underscores."
	}
	return true, ""
}

// ValidateEmail checks whether an email address is well-formed
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Please provide a valid email address."
	}
	return true, ""
}

// ValidatePassword checks whether a password meets the length requirement
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, fmt.Sprintf("Password must be at least %d characters long.", MinPasswordLength)
	}
	return true, ""
}

// ValidateRating checks whether a review rating is within the 1-5 range
func ValidateRating(rating int) (bool, string) {
	if rating < 1 || rating > 5 {
		return false, "Rating must be between 1 and 5."
	}
	return true, ""
}

// SanitizeString trims whitespace and strips control characters from input
func SanitizeString(input string) string {
	sanitized := strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, sanitized)
}

// IsDuplicateKeyError reports whether err comes from a unique constraint
// violation. Both the postgres and sqlite drivers surface these as plain
// errors, so the message is inspected.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
