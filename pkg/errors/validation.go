package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputName validates a generated file name such as the descriptor
// or metatype name. Names are resolved relative to the output directory, so
// they may contain subdirectories but may not escape it.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No null bytes or control characters
//   - No absolute paths
//   - No path traversal sequences (..)
func ValidateOutputName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "%s cannot be empty", kind)
	}

	const maxNameLength = 255
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidConfig, "%s too long (max %d characters)", kind, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s contains invalid characters", kind)
		}
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidConfig, "%s must be relative to the output directory: %q", kind, name)
	}

	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidConfig, "%s cannot contain path traversal sequences (..): %q", kind, name)
		}
	}

	return nil
}
