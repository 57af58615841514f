// Package shell decides which interpreter runs a hook.
//
// Selection is a pure function of the target platform, a handful of
// environment variables, and (for script files) the file extension.
// No process is spawned here; dispatch consumes the Plan.
package shell

import (
	"path/filepath"
	"strings"

	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// Plan is the interpreter invocation chosen for one hook execution.
type Plan struct {
	Program string
	Args    []string
}

// CommandLine renders the plan for diagnostics.
func (p Plan) CommandLine() string {
	return strings.Join(append([]string{p.Program}, p.Args...), " ")
}

// SelectScript chooses the interpreter for a hook script file.
//
// Unix always gets `sh -e`. Windows behaves like Unix when a
// Unix-like shell environment is detected (MSYS2/Git-Bash, Cygwin,
// WSL); otherwise the script's extension picks the interpreter, with
// cmd as the default since extensionless scripts on native Windows
// are almost always batch-style wrappers.
func SelectScript(goos string, env types.Environment, scriptPath string, args []string) Plan {
	if goos != "windows" || unixLikeWindows(env) {
		planArgs := []string{"-e", scriptPath}
		if len(args) > 0 {
			planArgs = append(planArgs, strings.Join(args, " "))
		}
		return Plan{Program: "sh", Args: planArgs}
	}

	switch strings.ToLower(filepath.Ext(scriptPath)) {
	case ".ps1":
		planArgs := []string{"-ExecutionPolicy", "Bypass", "-File", scriptPath}
		planArgs = append(planArgs, args...)
		return Plan{Program: "powershell", Args: planArgs}
	case ".bat", ".cmd":
		fallthrough
	default:
		planArgs := []string{"/C", scriptPath}
		planArgs = append(planArgs, args...)
		return Plan{Program: "cmd", Args: planArgs}
	}
}

// SelectCommand chooses the interpreter for a command string from
// samoyed.toml. There is no file, so there is no extension dispatch:
// only the Unix / native-Windows split applies.
func SelectCommand(goos string, env types.Environment, command string) Plan {
	if goos != "windows" || unixLikeWindows(env) {
		return Plan{Program: "sh", Args: []string{"-c", command}}
	}
	return Plan{Program: "cmd", Args: []string{"/C", command}}
}

// unixLikeWindows reports whether a Unix-like shell environment is
// active on Windows: MSYS2 and Git-Bash export MSYSTEM, Cygwin exports
// CYGWIN, WSL exports WSL_DISTRO_NAME and WSL_INTEROP.
func unixLikeWindows(env types.Environment) bool {
	switch env.Get("MSYSTEM") {
	case "MINGW32", "MINGW64", "MSYS":
		return true
	}
	if _, ok := env.LookupEnv("CYGWIN"); ok {
		return true
	}
	if _, ok := env.LookupEnv("WSL_DISTRO_NAME"); ok {
		return true
	}
	if _, ok := env.LookupEnv("WSL_INTEROP"); ok {
		return true
	}
	return false
}
