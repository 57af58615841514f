// Package commands implements the samoyed CLI workflows on top of the
// engine packages, keeping the cobra layer free of logic.
package commands

import (
	"path/filepath"

	"github.com/nutthead/samoyed-sub000/pkg/config"
	"github.com/nutthead/samoyed-sub000/pkg/git"
	"github.com/nutthead/samoyed-sub000/pkg/hooks"
	"github.com/nutthead/samoyed-sub000/pkg/logging"
	"github.com/nutthead/samoyed-sub000/pkg/paths"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// InitOptions configures one run of the init workflow.
type InitOptions struct {
	FS     types.FS
	Runner types.CommandRunner

	// HooksDir is the user-chosen directory name; empty means the
	// default .samoyed.
	HooksDir string

	// ProjectType seeds the starter samoyed.toml ("rust", "go",
	// "node", "python", or empty).
	ProjectType string
}

// InitResult reports what init did, for the CLI to present.
type InitResult struct {
	HooksDir      string
	HooksPath     string // the value written to core.hooksPath
	ConfigCreated bool   // false when samoyed.toml already existed
}

// Init validates the hooks directory name, verifies the repository,
// configures Git and installs the wrapper files. The name is validated
// before anything touches the filesystem, so a rejected name means no
// mutation happened at all.
func Init(opts InitOptions) (*InitResult, error) {
	logger := logging.GetLogger("commands")

	hooksDir := opts.HooksDir
	if hooksDir == "" {
		hooksDir = paths.DefaultHooksDir
	}

	if err := paths.ValidateHooksDir(hooksDir); err != nil {
		return nil, err
	}
	if err := git.CheckRepository(opts.FS); err != nil {
		return nil, err
	}

	// Git config values use forward slashes on every platform.
	hooksPath := filepath.ToSlash(paths.WrapperDir(hooksDir))
	if err := git.SetHooksPath(opts.Runner, hooksPath); err != nil {
		return nil, err
	}

	if err := hooks.Install(opts.FS, hooksDir); err != nil {
		return nil, err
	}
	if err := hooks.SeedExamples(opts.FS, hooksDir); err != nil {
		return nil, err
	}

	result := &InitResult{HooksDir: hooksDir, HooksPath: hooksPath}

	// A starter config is written once; an existing samoyed.toml is
	// user-owned and never touched.
	if _, err := opts.FS.Stat(paths.ConfigFileName); err != nil {
		starter := config.Starter(opts.ProjectType)
		starter.Settings.HookDirectory = hooksDir
		if err := starter.Save(opts.FS, paths.ConfigFileName); err != nil {
			return nil, err
		}
		result.ConfigCreated = true
	}

	logger.Info().Str("hooksDir", hooksDir).Bool("configCreated", result.ConfigCreated).Msg("Initialized hooks")
	return result, nil
}
