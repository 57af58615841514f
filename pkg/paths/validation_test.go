package paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
)

func TestValidateHooksDirFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		goos     string
		wantCode errors.ErrorCode
	}{
		{
			name: "default name is valid",
			path: ".samoyed",
			goos: "linux",
		},
		{
			name: "nested relative name is valid",
			path: "tools/git-hooks",
			goos: "linux",
		},
		{
			name:     "empty",
			path:     "",
			goos:     "linux",
			wantCode: errors.ErrPathEmpty,
		},
		{
			name:     "whitespace only",
			path:     "   ",
			goos:     "linux",
			wantCode: errors.ErrPathEmpty,
		},
		{
			name:     "256 characters is too long",
			path:     strings.Repeat("a", 256),
			goos:     "linux",
			wantCode: errors.ErrPathTooLong,
		},
		{
			name: "255 characters is accepted",
			path: strings.Repeat("a", 255),
			goos: "linux",
		},
		{
			name:     "length counts characters not bytes",
			path:     strings.Repeat("é", 200),
			goos:     "linux",
			wantCode: errors.ErrPathChars,
		},
		{
			name:     "256 multibyte characters is too long",
			path:     strings.Repeat("é", 256),
			goos:     "linux",
			wantCode: errors.ErrPathTooLong,
		},
		{
			name:     "leading traversal",
			path:     "../escape",
			goos:     "linux",
			wantCode: errors.ErrPathTraversal,
		},
		{
			name:     "mid-string traversal",
			path:     "hooks/../../etc",
			goos:     "linux",
			wantCode: errors.ErrPathTraversal,
		},
		{
			name:     "bare dot-dot",
			path:     "..",
			goos:     "linux",
			wantCode: errors.ErrPathTraversal,
		},
		{
			name:     "traversal beats absoluteness",
			path:     "/tmp/../hooks",
			goos:     "linux",
			wantCode: errors.ErrPathTraversal,
		},
		{
			name:     "unix absolute",
			path:     "/etc/hooks",
			goos:     "linux",
			wantCode: errors.ErrPathAbsolute,
		},
		{
			name:     "windows drive absolute",
			path:     `C:\hooks`,
			goos:     "windows",
			wantCode: errors.ErrPathAbsolute,
		},
		{
			name:     "windows drive absolute with forward slash",
			path:     "D:/hooks",
			goos:     "windows",
			wantCode: errors.ErrPathAbsolute,
		},
		{
			name:     "windows UNC absolute",
			path:     `\\server\share\hooks`,
			goos:     "windows",
			wantCode: errors.ErrPathAbsolute,
		},
		{
			name:     "git-bash style leading slash on windows",
			path:     "/c/hooks",
			goos:     "windows",
			wantCode: errors.ErrPathAbsolute,
		},
		{
			name:     "drive prefix without separator is an invalid char",
			path:     "C:hooks",
			goos:     "windows",
			wantCode: errors.ErrPathChars,
		},
		{
			name:     "shell metacharacters rejected",
			path:     "hooks;rm -rf",
			goos:     "linux",
			wantCode: errors.ErrPathChars,
		},
		{
			name:     "space rejected",
			path:     "my hooks",
			goos:     "linux",
			wantCode: errors.ErrPathChars,
		},
		{
			name:     "backslash rejected on unix",
			path:     `hooks\sub`,
			goos:     "linux",
			wantCode: errors.ErrPathChars,
		},
		{
			name: "backslash accepted on windows",
			path: `hooks\sub`,
			goos: "windows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHooksDirFor(tt.path, tt.goos)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestValidateHooksDirReportsLength(t *testing.T) {
	err := ValidateHooksDirFor(strings.Repeat("a", 256), "linux")
	assert.ErrorContains(t, err, "256")
}

func TestValidateHooksDirReportsOffendingChars(t *testing.T) {
	err := ValidateHooksDirFor("a b$c$", "linux")
	// Distinct offenders, in first-appearance order.
	assert.ErrorContains(t, err, " $")
}

func TestValidateHooksDirUsesHostPlatform(t *testing.T) {
	// Relative clean names validate everywhere; this exercises the
	// runtime.GOOS entry point.
	assert.NoError(t, ValidateHooksDir(".samoyed"))
	assert.Error(t, ValidateHooksDir("../escape"))
}
