package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLayoutID validates a layout identifier for safety and correctness.
// It rejects identifiers that could be used for path traversal or injection
// when the id is interpolated into cache keys or store queries.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLayoutID, "layout id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidLayoutID, "layout id too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayoutID, "layout id contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidLayoutID, "layout id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// layoutTypeRegex matches the snake_case identifiers used for layout types.
var layoutTypeRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateLayoutType validates a layout type identifier. Unknown but
// well-formed types are accepted here; the engine handles those with its
// fallback geometry.
func ValidateLayoutType(layoutType string) error {
	if layoutType == "" {
		return New(ErrCodeInvalidInput, "layout type cannot be empty")
	}
	if !layoutTypeRegex.MatchString(layoutType) {
		return New(ErrCodeInvalidInput, "invalid layout type identifier: %q", layoutType)
	}
	return nil
}

// ValidateTemplateFilename validates a template filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateTemplateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidTemplate, "template filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidTemplate, "template filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidTemplate, "template filename cannot be a hidden file")
	}

	if !strings.HasSuffix(filename, ".yaml") && !strings.HasSuffix(filename, ".yml") {
		return New(ErrCodeInvalidTemplate, "template filename must end in .yaml or .yml")
	}

	return nil
}

// ValidatePath validates a file path within the template directory for
// safety. It prevents path traversal attacks and ensures reasonable path
// length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateRatio checks a motif ratio against the accepted CLI range. The
// engine itself clamps silently; the flag surface rejects instead so typos
// are visible.
func ValidateRatio(ratio int) error {
	if ratio < 30 || ratio > 70 {
		return New(ErrCodeInvalidRatio, "ratio must be between 30 and 70, got %d", ratio)
	}
	return nil
}

// ValidateTransparency checks a transparency percentage for the flag surface.
func ValidateTransparency(pct int) error {
	if pct < 0 || pct > 100 {
		return New(ErrCodeInvalidTransparency, "transparency must be between 0 and 100, got %d", pct)
	}
	return nil
}

// hexColorRegex matches #RGB and #RRGGBB color literals.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color literal used in palette overrides.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid hex color: %q", color)
	}
	return nil
}
