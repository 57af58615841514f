// Package executor provides the production types.CommandRunner that
// spawns real subprocesses.
package executor

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/nutthead/samoyed-sub000/pkg/logging"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// OSRunner runs subprocesses synchronously, one at a time, and blocks
// until the child exits. It implements types.CommandRunner and
// types.Streamer.
type OSRunner struct{}

// New creates an OSRunner.
func New() *OSRunner {
	return &OSRunner{}
}

// Run executes program with args, capturing stdout and stderr. A
// nonzero exit lands in RunResult.ExitCode with a nil error; the error
// is reserved for spawn failures (program missing, not executable).
func (r *OSRunner) Run(program string, args ...string) (types.RunResult, error) {
	logger := logging.GetLogger("executor")
	logger.Debug().Str("program", program).Strs("args", args).Msg("Running command")

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := types.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// RunStreaming executes program with args attached to this process's
// standard streams, so the child's output reaches the caller (Git)
// unchanged. Returns the child's exit code, or -1 with an error when
// the process could not be started.
func (r *OSRunner) RunStreaming(program string, args ...string) (int, error) {
	logger := logging.GetLogger("executor")
	logger.Debug().Str("program", program).Strs("args", args).Msg("Running command, streaming")

	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
