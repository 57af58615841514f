// Package git verifies the repository and points core.hooksPath at the
// samoyed wrapper directory.
package git

import (
	"runtime"
	"strings"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/logging"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// CheckRepository reports whether the current working directory is a
// Git repository root. Worktrees keep a .git *file* instead of a
// directory, so any .git entry counts.
func CheckRepository(fs types.FS) error {
	if _, err := fs.Stat(".git"); err != nil {
		return errors.New(errors.ErrNotGitRepository,
			"current directory is not a Git repository").
			WithSuggestion("run `git init` first, or change into the repository root")
	}
	return nil
}

// SetHooksPath configures core.hooksPath to hooksPath. It probes
// `git --version` first so a missing git binary produces an install
// suggestion rather than a bare config failure. This is the one
// persistent mutation this package performs; git's own config locking
// handles concurrent writers, surfaced here as a retryable error.
func SetHooksPath(runner types.CommandRunner, hooksPath string) error {
	logger := logging.GetLogger("git")

	probe, err := runner.Run("git", "--version")
	if err != nil || probe.ExitCode != 0 {
		return errors.New(errors.ErrGitNotFound, "git executable not found").
			WithSuggestion(installHint(runtime.GOOS))
	}

	result, err := runner.Run("git", "config", "core.hooksPath", hooksPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrGitConfig, "running git config")
	}
	if result.ExitCode != 0 {
		return classifyConfigFailure(result.Stderr)
	}

	logger.Info().Str("hooksPath", hooksPath).Msg("Configured core.hooksPath")
	return nil
}

// classifyConfigFailure maps git's stderr to a structured error. This
// is the one place samoyed still matches on free text: git reports
// config failures only through its (locale-sensitive) messages, so the
// substrings below are matched against the C-locale output.
func classifyConfigFailure(stderr string) error {
	msg := strings.TrimSpace(stderr)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "permission denied"):
		return errors.Newf(errors.ErrGitPermission, "git config failed: %s", msg).
			WithSuggestion("check that you own the repository's .git/config")
	case strings.Contains(lower, "could not lock config file"):
		return errors.Newf(errors.ErrGitConfigLocked, "git config failed: %s", msg).
			WithSuggestion("another git process holds the config lock; retry in a moment")
	case strings.Contains(lower, "not a git repository"):
		return errors.Newf(errors.ErrGitConfig, "git config failed: %s", msg).
			WithSuggestion("run `git init` first")
	case strings.Contains(lower, "bad config"):
		return errors.Newf(errors.ErrGitConfig, "git config failed: %s", msg).
			WithSuggestion("fix the syntax error in your git config file")
	case strings.Contains(lower, "invalid key"):
		return errors.Newf(errors.ErrGitConfig, "git config failed: %s", msg).
			WithSuggestion("your git version may be too old for core.hooksPath (needs 2.9+)")
	default:
		return errors.Newf(errors.ErrGitConfig, "git config failed: %s", msg)
	}
}

// installHint suggests how to install git on the target platform.
func installHint(goos string) string {
	switch goos {
	case "darwin":
		return "install git with `brew install git` or `xcode-select --install`"
	case "windows":
		return "install Git for Windows from https://git-scm.com/download/win"
	default:
		return "install git with your package manager, e.g. `apt install git` or `dnf install git`"
	}
}
