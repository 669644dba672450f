package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateColumnRef validates a symbolic column reference used by a series.
// References travel through log lines, cache keys, and error messages, so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateColumnRef(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "column reference cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "column reference too long (max 256 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "column reference contains invalid control characters")
		}
	}

	return nil
}

// themeNameRegex matches valid theme names: lowercase identifiers with dashes.
var themeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateThemeName validates a theme name used to look up built-in themes or
// theme files.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "theme name cannot be empty")
	}

	if !themeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTheme, "invalid theme name: %q", name)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path for safety.
// It prevents path traversal and unreasonable lengths; the CLI resolves the
// path relative to the working directory after validation.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}
