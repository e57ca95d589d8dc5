package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateCacheKey checks that key is safe to use as a relative file name
// below a cache directory, where both '/' and ':' separate path segments.
//
// Validation rules:
//   - Key cannot be empty
//   - Maximum length of 200 characters
//   - No control characters
//   - No absolute keys and no ".." segments
//   - No backslashes
func ValidateCacheKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "cache key cannot be empty")
	}

	const maxKeyLength = 200
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "cache key too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "cache key contains invalid characters")
		}
	}

	if strings.HasPrefix(key, "/") {
		return New(ErrCodeInvalidInput, "cache key must be relative")
	}
	segments := strings.FieldsFunc(key, func(r rune) bool { return r == '/' || r == ':' })
	if slices.Contains(segments, "..") {
		return New(ErrCodeInvalidInput, "cache key cannot contain path traversal sequences (..)")
	}
	if strings.Contains(key, "\\") {
		return New(ErrCodeInvalidInput, "cache key cannot contain backslashes")
	}
	return nil
}
