package hooks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/logging"
	"github.com/nutthead/samoyed-sub000/pkg/paths"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// wrapperTemplate is the body of every installed wrapper file. Git
// executes the wrapper, the wrapper forwards its own path and all
// arguments to samoyed-hook, and samoyed-hook resolves what to run.
const wrapperTemplate = `#!/usr/bin/env sh
# Installed by samoyed. Regenerate with 'samoyed init'; do not edit.
samoyed-hook "$0" "$@"
`

// exampleHooks are the fallback scripts seeded by SeedExamples.
var exampleHooks = []string{"pre-commit", "pre-push"}

// Install writes the framework-owned hook files under
// <hooksDir>/_: a .gitignore covering the directory and one wrapper
// per standard Git hook, each executable. Wrapper files are always
// rewritten; they belong to samoyed, not the user. Writes are not
// transactional: the first I/O failure aborts and may leave a
// partially populated directory, and re-running Install repairs it.
func Install(fs types.FS, hooksDir string) error {
	logger := logging.GetLogger("hooks")
	wrapperDir := paths.WrapperDir(hooksDir)

	if err := fs.MkdirAll(wrapperDir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrHookIO, "creating %s", wrapperDir)
	}

	gitignore := filepath.Join(wrapperDir, ".gitignore")
	if err := fs.WriteFile(gitignore, []byte("*"), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrHookIO, "writing %s", gitignore)
	}

	body := normalizeLineEndings(wrapperTemplate)
	for _, hook := range StandardHooks {
		target := filepath.Join(wrapperDir, hook)
		if err := fs.WriteFile(target, []byte(body), 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrHookIO, "writing %s", target)
		}
		// WriteFile's perm is subject to the umask; make the 0755
		// contract explicit. No-op on platforms without mode bits.
		if err := fs.Chmod(target, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrHookIO, "marking %s executable", target)
		}
	}

	logger.Info().Str("dir", wrapperDir).Int("hooks", len(StandardHooks)).Msg("Installed hook wrappers")
	return nil
}

// SeedExamples creates starter fallback scripts under
// <hooksDir>/scripts for a small subset of hooks. Existing files are
// never touched: once created, a fallback script belongs to the user.
func SeedExamples(fs types.FS, hooksDir string) error {
	scriptsDir := paths.ScriptsDir(hooksDir)
	if err := fs.MkdirAll(scriptsDir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrHookIO, "creating %s", scriptsDir)
	}

	for _, hook := range exampleHooks {
		target := filepath.Join(scriptsDir, hook)
		if _, err := fs.Stat(target); err == nil {
			continue
		}
		body := normalizeLineEndings(exampleScript(hook, target))
		if err := fs.WriteFile(target, []byte(body), 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrHookIO, "writing %s", target)
		}
		if err := fs.Chmod(target, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrHookIO, "marking %s executable", target)
		}
	}
	return nil
}

func exampleScript(hook, path string) string {
	return fmt.Sprintf(`#!/usr/bin/env sh
# Fallback %s script. samoyed runs this file only when samoyed.toml
# defines no "%s" command. Replace this body with your checks.
echo "samoyed: no %s command configured (edit %s)"
`, hook, hook, hook, path)
}

// normalizeLineEndings rewrites CRLF to LF so installed scripts are
// byte-identical regardless of the host the installer ran on.
func normalizeLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
