package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// classNameRegex matches a single presentation class token.
var classNameRegex = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// ValidateClassName validates a presentation class name.
// Whitespace is rejected because a class list token cannot contain it.
func ValidateClassName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidClass, "class name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidClass, "class name too long (max 128 characters)")
	}
	if !classNameRegex.MatchString(name) {
		return New(ErrCodeInvalidClass, "invalid class name: %q", name)
	}
	return nil
}

// ValidateLabel validates an item label shown by renderers.
func ValidateLabel(label string) error {
	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateRedisURL validates a cache backend URL.
// It only accepts the redis and rediss schemes.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "URL must use redis or rediss scheme")
	}
	return nil
}
