package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds rule and output file paths accepted from flags or env.
const maxPathLength = 4096

// ValidateFilePath checks that path is usable as a rule or image file path.
//
// Both relative and absolute paths are accepted. The path must be non-empty,
// must not name a directory (trailing separator) and must not contain null
// bytes or control characters.
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory: %q", path)
	}
	return nil
}
