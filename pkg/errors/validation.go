package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// symbolRegex matches valid LV2 symbols: a letter or underscore followed by
// letters, digits and underscores.
var symbolRegex = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// MaxShortNameLength is the longest LV2 short name, in grapheme clusters.
const MaxShortNameLength = 16

// ValidateSymbol validates an LV2 symbol, the identifier used for plugins
// and ports in generated code and host scripting.
func ValidateSymbol(s string) error {
	if s == "" {
		return New(ErrCodeInvalidSymbol, "symbol cannot be empty")
	}
	if !symbolRegex.MatchString(s) {
		return New(ErrCodeInvalidSymbol, "invalid symbol: %q", s)
	}
	return nil
}

// ValidateShortName validates an LV2 short name. Length is counted in
// user-perceived characters, so combining sequences count once.
func ValidateShortName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLiteral, "short name cannot be empty")
	}
	if n := uniseg.GraphemeClusterCount(name); n > MaxShortNameLength {
		return New(ErrCodeInvalidLiteral, "short name %q too long (%d > %d characters)", name, n, MaxShortNameLength)
	}
	return nil
}

// ValidateBundlePath validates a file referenced from inside a bundle. The
// path is relative to the bundle directory and must stay inside it.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No absolute paths
//   - No path traversal out of the bundle
func ValidateBundlePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidBundle, "path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBundle, "path contains invalid characters")
		}
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidBundle, "path must be relative to the bundle: %q", path)
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return New(ErrCodeInvalidBundle, "path escapes the bundle: %q", path)
	}

	return nil
}
