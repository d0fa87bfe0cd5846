package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds location and world names.
const maxNameLength = 128

// ValidateLocationName validates a location name before it becomes a graph key.
//
// The rules are conservative:
//   - No empty or whitespace-only names
//   - No leading or trailing whitespace
//   - No control characters (names end up in terminal output and DOT files)
//   - Maximum length of 128 characters
func ValidateLocationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "location name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "location name too long (max %d characters)", maxNameLength)
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "location name %q has surrounding whitespace", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "location name contains invalid control characters")
		}
	}

	return nil
}

// ValidateWorldFile validates the path of a world description file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml
func ValidateWorldFile(path string) error {
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

	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return New(ErrCodeInvalidPath, "world file must have a .toml extension: %s", path)
	}

	return nil
}

// ValidateFormat validates an output format against the supported set.
func ValidateFormat(format string, supported []string) error {
	for _, f := range supported {
		if f == format {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
}

// ValidateRedisURL validates a redis connection URL.
// It ensures the URL uses the redis or rediss scheme.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "redis URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "redis URL must use redis or rediss scheme")
	}

	return nil
}
