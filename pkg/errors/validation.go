package errors

import (
	"strings"
	"unicode"
)

const (
	maxLayoutIDLength = 128
	maxFocusIDLength  = 256
	maxPathSegments   = 32
)

// ValidateLayoutID validates a layout identifier.
//
// Layout identifiers appear as path segments in the HTTP API and in
// command-line lookups, so the rules are conservative:
//   - No empty identifiers
//   - No control characters
//   - No slashes or backslashes
//   - Maximum length of 128 characters
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidIdentifier, "layout identifier cannot be empty")
	}
	if len(id) > maxLayoutIDLength {
		return New(ErrCodeInvalidIdentifier, "layout identifier too long (max %d characters)", maxLayoutIDLength)
	}
	if hasControl(id) {
		return New(ErrCodeInvalidIdentifier, "layout identifier contains invalid control characters")
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidIdentifier, "layout identifier %q cannot contain path separators", id)
	}
	return nil
}

// ValidateFocusID validates an element focus identifier. Focus identifiers
// are opaque to the engine; only emptiness, length, and control characters
// are checked.
func ValidateFocusID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidIdentifier, "focus identifier cannot be empty")
	}
	if len(id) > maxFocusIDLength {
		return New(ErrCodeInvalidIdentifier, "focus identifier too long (max %d characters)", maxFocusIDLength)
	}
	if hasControl(id) {
		return New(ErrCodeInvalidIdentifier, "focus identifier contains invalid control characters")
	}
	return nil
}

// ParseLayoutPath splits a slash-separated path of child layout identifiers
// and validates each segment. Leading and trailing slashes are ignored and
// an empty path addresses the root.
func ParseLayoutPath(path string) ([]string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, nil
	}
	if strings.Contains(path, "//") {
		return nil, New(ErrCodeInvalidPath, "layout path cannot contain empty segments")
	}
	segs := strings.Split(path, "/")
	if len(segs) > maxPathSegments {
		return nil, New(ErrCodeInvalidPath, "layout path too deep (max %d segments)", maxPathSegments)
	}
	for _, s := range segs {
		if err := ValidateLayoutID(s); err != nil {
			return nil, Wrap(ErrCodeInvalidPath, err, "invalid layout path %q", path)
		}
	}
	return segs, nil
}

// ValidateFilePath validates a layout file path given on the command line or
// in a request. Traversal sequences and control characters are rejected.
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if hasControl(path) {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
