package errors

import (
	"regexp"
	"unicode"
)

// MaxUsernameLength bounds usernames accepted from the CLI and query strings.
const MaxUsernameLength = 64

// usernameRegex matches the characters LeetCode allows in a username.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateUsername validates a username before it reaches the generator.
//
// The username ends up in the card's <title>, a text node and a link href, none
// of which are escaped, so the rules are strict:
//   - No empty names
//   - No control characters
//   - Only ASCII letters, digits, '_', '.' and '-'
//   - Maximum length of 64 characters
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}

	if len(name) > MaxUsernameLength {
		return New(ErrCodeInvalidUsername, "username too long (max %d characters)", MaxUsernameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUsername, "username contains invalid control characters")
		}
	}

	if !usernameRegex.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid username: %q", name)
	}

	return nil
}

// ValidateDimension checks that a card width or height is a positive pixel count.
func ValidateDimension(field string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %d", field, v)
	}
	if v > 4096 {
		return New(ErrCodeInvalidConfig, "%s too large (max 4096), got %d", field, v)
	}
	return nil
}
