// Package dispatcher resolves and runs one Git hook invocation.
//
// Git executes a samoyed wrapper file, the wrapper execs samoyed-hook,
// and samoyed-hook calls Dispatch exactly once. Dispatch resolves the
// execution mode, finds what to run (configured command first,
// fallback script second) and relays the child's exit code back so Git
// sees the hook's verdict unchanged.
package dispatcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nutthead/samoyed-sub000/pkg/config"
	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/logging"
	"github.com/nutthead/samoyed-sub000/pkg/paths"
	"github.com/nutthead/samoyed-sub000/pkg/shell"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// Mode is the execution mode for one hook invocation, resolved from
// the SAMOYED environment variable (legacy name SAMOID) or, when the
// variable is unset, from [settings] in samoyed.toml.
type Mode int

const (
	// ModeNormal runs the hook.
	ModeNormal Mode = iota
	// ModeSkip exits 0 without spawning anything.
	ModeSkip
	// ModeDebug runs the hook with diagnostics on stderr.
	ModeDebug
)

// Options carries the injected capabilities for one dispatch.
type Options struct {
	FS     types.FS
	Env    types.Environment
	Runner types.Streamer

	// GOOS overrides the target platform in tests; empty means
	// runtime.GOOS.
	GOOS string

	// Diagnostics destination; empty means os.Stderr. Hook output does
	// not pass through here, the child is attached to the real streams.
	Stderr io.Writer
}

func (o *Options) goos() string {
	if o.GOOS == "" {
		return runtime.GOOS
	}
	return o.GOOS
}

func (o *Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

// Dispatch handles one hook invocation. args are the arguments Git
// passed to the wrapper file, args[0] being the wrapper's own path;
// the hook name is its basename. The returned int is the exit code to
// relay to Git. A non-nil error is a dispatch failure (bad invocation,
// unreadable config, unspawnable shell), never the hook's own verdict.
func Dispatch(opts Options, args []string) (int, error) {
	logger := logging.GetLogger("dispatcher")

	mode, fromEnv := envMode(opts.Env)
	if mode == ModeSkip {
		logger.Debug().Msg("Hooks skipped via environment")
		return 0, nil
	}

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return 0, errors.New(errors.ErrUsage, "no hook name provided").
			WithSuggestion("samoyed-hook is invoked by the installed Git wrappers, not directly")
	}
	hookName := filepath.Base(args[0])
	hookArgs := args[1:]

	cfg, err := config.Load(opts.FS, paths.ConfigFileName)
	if err != nil {
		return 0, err
	}

	// The environment variable wins; settings apply only when it is
	// unset.
	if !fromEnv {
		switch {
		case cfg.Settings.SkipHooks:
			logger.Debug().Msg("Hooks skipped via settings")
			return 0, nil
		case cfg.Settings.Debug:
			mode = ModeDebug
		}
	}

	debugf := func(format string, a ...interface{}) {
		if mode == ModeDebug {
			fmt.Fprintf(opts.stderr(), "samoyed: "+format+"\n", a...)
		}
	}
	debugf("hook %s invoked with %d argument(s)", hookName, len(hookArgs))

	if command, ok := cfg.Command(hookName); ok {
		if err := reportInitScript(opts, debugf); err != nil {
			return 0, err
		}
		plan := shell.SelectCommand(opts.goos(), opts.Env, command)
		debugf("running configured command: %s", plan.CommandLine())
		return execute(opts, plan, hookName, mode)
	}

	script := filepath.Join(cfg.Settings.HookDirectory, paths.ScriptsSubdir, hookName)
	if _, err := opts.FS.Stat(script); err != nil {
		// Most hooks are unused; a missing fallback is the quiet
		// common case, not a failure.
		debugf("no command configured and no %s, nothing to do", script)
		return 0, nil
	}

	plan := shell.SelectScript(opts.goos(), opts.Env, script, hookArgs)
	debugf("running fallback script: %s", plan.CommandLine())
	return execute(opts, plan, hookName, mode)
}

// execute spawns the planned interpreter and relays its exit code. A
// spawn failure is a dispatch failure, distinct from the hook exiting
// nonzero.
func execute(opts Options, plan shell.Plan, hookName string, mode Mode) (int, error) {
	code, err := opts.Runner.RunStreaming(plan.Program, plan.Args...)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrDispatch,
			"cannot spawn %s for hook %s", plan.Program, hookName)
	}

	if code == 127 {
		fmt.Fprintf(opts.stderr(), "samoyed: %s: command not found in PATH\n", hookName)
		if mode == ModeDebug {
			// The directory count helps spot an empty or truncated
			// PATH without leaking its contents.
			fmt.Fprintf(opts.stderr(), "samoyed: PATH contains %d director(y/ies)\n",
				pathEntryCount(opts.Env, opts.goos()))
		}
	}
	return code, nil
}

// envMode resolves the execution mode from SAMOYED, falling back to
// the legacy SAMOID name. The second return reports whether either
// variable was set at all.
func envMode(env types.Environment) (Mode, bool) {
	value, ok := env.LookupEnv("SAMOYED")
	if !ok {
		value, ok = env.LookupEnv("SAMOID")
	}
	if !ok {
		return ModeNormal, false
	}
	switch value {
	case "0":
		return ModeSkip, true
	case "2":
		return ModeDebug, true
	default:
		return ModeNormal, true
	}
}

// reportInitScript surfaces the optional per-user init script in debug
// output. Detection only: the script is not sourced into the child's
// environment, a known limitation carried over deliberately. Failing
// to resolve a home directory at all is a dispatch failure.
func reportInitScript(opts Options, debugf func(string, ...interface{})) error {
	initScript, err := paths.InitScriptPath(opts.Env, opts.goos())
	if err != nil {
		return err
	}
	if _, err := opts.FS.Stat(initScript); err == nil {
		debugf("init script %s present (detected, not sourced)", initScript)
	}
	return nil
}

func pathEntryCount(env types.Environment, goos string) int {
	sep := ":"
	if goos == "windows" {
		sep = ";"
	}
	value := env.Get("PATH")
	if value == "" {
		return 0
	}
	count := 0
	for _, entry := range strings.Split(value, sep) {
		if entry != "" {
			count++
		}
	}
	return count
}
