package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateEntryName validates a single file or directory name taken from a
// tree document.
//
// Validation rules:
//   - Name cannot be empty, "." or ".."
//   - Maximum length of 255 characters
//   - No path separators
//   - No null bytes or control characters
func ValidateEntryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTree, "entry name cannot be empty")
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidTree, "entry name cannot be %q", name)
	}

	const maxNameLength = 255
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidTree, "entry name too long (max %d characters)", maxNameLength)
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidTree, "entry name %q cannot contain path separators", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "entry name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a slash-separated path into a tree.
//
// A leading slash is allowed and refers to the root. The empty path and "/"
// both name the root itself.
//
// Validation rules:
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - No path traversal segments (. or ..)
//   - No empty segments (//)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
	if trimmed == "" {
		return nil
	}
	for _, seg := range strings.Split(trimmed, "/") {
		switch seg {
		case "":
			return New(ErrCodeInvalidPath, "path %q contains an empty segment", path)
		case ".", "..":
			return New(ErrCodeInvalidPath, "path cannot contain traversal segments (%s)", seg)
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
