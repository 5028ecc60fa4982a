// Package validate checks user-supplied account fields before any mutation
// is attempted. All rule failures collapse to apperr.ErrValidation; the
// specific rule is never reported to the client.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"medialist/api/internal/apperr"
)

const minPasswordLength = 7

var usernamePattern = regexp.MustCompile(`^[-a-zA-Z0-9._]+$`)

// Name returns the trimmed display name.
func Name(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name required: %w", apperr.ErrValidation)
	}
	return name, nil
}

// Username returns the trimmed login identifier.
func Username(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("username required: %w", apperr.ErrValidation)
	}
	if !usernamePattern.MatchString(username) {
		return "", fmt.Errorf("username malformed: %w", apperr.ErrValidation)
	}
	return username, nil
}

// Password returns the trimmed secret. The literal substring "password" is
// rejected regardless of casing.
func Password(password string) (string, error) {
	password = strings.TrimSpace(password)
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("password too short: %w", apperr.ErrValidation)
	}
	if strings.Contains(strings.ToLower(password), "password") {
		return "", fmt.Errorf("password contains forbidden substring: %w", apperr.ErrValidation)
	}
	return password, nil
}
