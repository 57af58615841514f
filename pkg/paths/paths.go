package paths

import (
	"path/filepath"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

const (
	// DefaultHooksDir is the hooks directory used when init is given
	// no directory argument.
	DefaultHooksDir = ".samoyed"

	// ConfigFileName is the per-repository configuration file.
	ConfigFileName = "samoyed.toml"

	// WrapperSubdir holds the framework-owned wrapper files Git runs.
	WrapperSubdir = "_"

	// ScriptsSubdir holds user-owned fallback scripts.
	ScriptsSubdir = "scripts"
)

// WrapperDir returns the directory core.hooksPath points at.
func WrapperDir(hooksDir string) string {
	return filepath.Join(hooksDir, WrapperSubdir)
}

// ScriptsDir returns the fallback script directory for hooksDir.
func ScriptsDir(hooksDir string) string {
	return filepath.Join(hooksDir, ScriptsSubdir)
}

// InitScriptPath resolves the optional per-user init script,
// $XDG_CONFIG_HOME/samoyed/init.sh by convention. The environment is
// injected so dispatch stays testable without touching the real user
// profile. Resolution failure means no home directory could be
// determined at all.
func InitScriptPath(env types.Environment, goos string) (string, error) {
	root, err := configRoot(env, goos)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "samoyed", "init.sh"), nil
}

// configRoot returns the per-user configuration root: XDG_CONFIG_HOME
// (default ~/.config) on Unix, APPDATA (default
// %USERPROFILE%\AppData\Roaming) on Windows.
func configRoot(env types.Environment, goos string) (string, error) {
	if goos == "windows" {
		if appData := env.Get("APPDATA"); appData != "" {
			return appData, nil
		}
		if profile := env.Get("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Roaming"), nil
		}
		return "", errors.New(errors.ErrDispatch,
			"cannot resolve a configuration directory: neither APPDATA nor USERPROFILE is set")
	}

	if xdgHome := env.Get("XDG_CONFIG_HOME"); xdgHome != "" {
		return xdgHome, nil
	}
	if home := env.Get("HOME"); home != "" {
		return filepath.Join(home, ".config"), nil
	}
	return "", errors.New(errors.ErrDispatch,
		"cannot resolve a configuration directory: HOME is not set")
}
