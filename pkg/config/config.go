// Package config loads and writes samoyed.toml.
//
// The file is read fresh on every hook invocation; nothing is cached
// between dispatches, so config edits take effect on the next Git
// operation with no reload step.
package config

import (
	stderrors "errors"
	"io/fs"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/hooks"
	"github.com/nutthead/samoyed-sub000/pkg/paths"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// Settings holds the optional [settings] table. Every field has a
// default; an absent table means all defaults.
type Settings struct {
	HookDirectory string `toml:"hook_directory"`
	Debug         bool   `toml:"debug"`
	FailFast      bool   `toml:"fail_fast"`
	SkipHooks     bool   `toml:"skip_hooks"`
}

// Config is the parsed samoyed.toml: the [hooks] table mapping hook
// name to shell command, plus settings.
type Config struct {
	Hooks    map[string]string `toml:"hooks"`
	Settings Settings          `toml:"settings"`
}

// Default returns a configuration with no hook commands and default
// settings.
func Default() *Config {
	return &Config{
		Hooks: make(map[string]string),
		Settings: Settings{
			HookDirectory: paths.DefaultHooksDir,
			Debug:         false,
			FailFast:      true,
			SkipHooks:     false,
		},
	}
}

// Load reads and parses samoyed.toml from path. A missing file is not
// an error: hooks without configuration are the common case, so the
// defaults are returned. Malformed TOML and hook names outside the
// standard set are errors.
func Load(filesystem types.FS, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "reading %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path).
			WithSuggestion("check the TOML syntax of " + path)
	}
	if cfg.Hooks == nil {
		cfg.Hooks = make(map[string]string)
	}
	if cfg.Settings.HookDirectory == "" {
		cfg.Settings.HookDirectory = paths.DefaultHooksDir
	}

	if unknown := unknownHooks(cfg.Hooks); len(unknown) > 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"%s defines unknown hooks: %s", path, strings.Join(unknown, ", ")).
			WithSuggestion("hook names must be standard Git client-side hooks, e.g. pre-commit")
	}

	return cfg, nil
}

// Command returns the configured command for a hook, if any.
func (c *Config) Command(hook string) (string, bool) {
	cmd, ok := c.Hooks[hook]
	if !ok || strings.TrimSpace(cmd) == "" {
		return "", false
	}
	return cmd, true
}

// Save serializes the configuration to path as TOML.
func (c *Config) Save(filesystem types.FS, path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "serializing %s", path)
	}
	if err := filesystem.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrHookIO, "writing %s", path)
	}
	return nil
}

// Starter returns the initial configuration written by `samoyed init`
// for a project type. Unrecognized types get an empty hooks table; the
// known types seed a conventional pre-commit command.
func Starter(projectType string) *Config {
	cfg := Default()
	switch projectType {
	case "rust":
		cfg.Hooks["pre-commit"] = "cargo fmt --check && cargo clippy --all-targets -- -D warnings"
	case "go":
		cfg.Hooks["pre-commit"] = "gofmt -l . && go vet ./..."
	case "node":
		cfg.Hooks["pre-commit"] = "npm test"
	case "python":
		cfg.Hooks["pre-commit"] = "ruff check ."
	}
	return cfg
}

func unknownHooks(table map[string]string) []string {
	var unknown []string
	for name := range table {
		if !hooks.IsStandardHook(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
