package paths

import (
	"regexp"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
)

// Maximum accepted length for a hooks directory name. Git config
// values and every mainstream filesystem handle far more, but a hook
// directory name has no business being longer than this.
const maxHooksDirLen = 255

var windowsAbsRe = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// ValidateHooksDir validates a proposed hooks directory name for the
// running platform. See ValidateHooksDirFor.
func ValidateHooksDir(path string) error {
	return ValidateHooksDirFor(path, runtime.GOOS)
}

// ValidateHooksDirFor performs ordered, short-circuiting validation of
// a hooks directory name against the given target platform ("windows"
// or anything Unix-like). Checks, in order:
//
//  1. empty or whitespace-only
//  2. longer than 255 characters
//  3. contains ".." anywhere (checked before absoluteness so a
//     traversal inside a relative path is still caught)
//  4. platform-absolute
//  5. characters outside [A-Za-z0-9_.\-/], plus backslash on Windows
//
// The name is never canonicalized; callers use it as given.
func ValidateHooksDirFor(path string, goos string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New(errors.ErrPathEmpty, "hooks directory name is empty").
			WithSuggestion("pass a relative directory name such as .samoyed")
	}

	if n := utf8.RuneCountInString(path); n > maxHooksDirLen {
		return errors.Newf(errors.ErrPathTooLong,
			"hooks directory name is %d characters, the limit is %d", n, maxHooksDirLen)
	}

	if strings.Contains(path, "..") {
		return errors.Newf(errors.ErrPathTraversal,
			"hooks directory name %q contains a parent directory reference", path).
			WithSuggestion("use a directory inside the repository, such as .samoyed")
	}

	if isAbsoluteFor(path, goos) {
		return errors.Newf(errors.ErrPathAbsolute,
			"hooks directory name %q is an absolute path", path).
			WithSuggestion("use a path relative to the repository root")
	}

	if bad := invalidChars(path, goos); bad != "" {
		return errors.Newf(errors.ErrPathChars,
			"hooks directory name contains invalid characters: %s", bad)
	}

	return nil
}

// isAbsoluteFor reports whether path is absolute under the target
// platform's grammar. On Windows that covers drive paths (C:\ or C:/),
// UNC paths (\\server\share) and Git-Bash style leading slashes.
func isAbsoluteFor(path string, goos string) bool {
	if strings.HasPrefix(path, "/") {
		return true
	}
	if goos == "windows" {
		return windowsAbsRe.MatchString(path) || strings.HasPrefix(path, `\\`)
	}
	return false
}

// invalidChars returns the distinct offending characters in path, in
// first-appearance order, or "" if the name is clean.
func invalidChars(path string, goos string) string {
	var bad []rune
	seen := make(map[rune]bool)
	for _, r := range path {
		if allowedChar(r, goos) || seen[r] {
			continue
		}
		seen[r] = true
		bad = append(bad, r)
	}
	return string(bad)
}

func allowedChar(r rune, goos string) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '.' || r == '-' || r == '/':
		return true
	case r == '\\':
		return goos == "windows"
	}
	return false
}
