package types

import (
	"io/fs"
)

// FS is the filesystem interface required for samoyed operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Permission operations - a no-op success on platforms without
	// Unix permission bits
	Chmod(name string, mode fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// Environment provides read access to process environment variables
type Environment interface {
	// Get returns the value of the variable, or "" if unset
	Get(key string) string

	// LookupEnv returns the value and whether the variable is set
	LookupEnv(key string) (string, bool)
}

// RunResult holds the observable outcome of a finished subprocess
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner spawns a subprocess and waits for it to finish.
// A non-nil error means the process could not be started or waited on;
// a nonzero exit is reported through RunResult.ExitCode, not the error.
type CommandRunner interface {
	Run(program string, args ...string) (RunResult, error)
}

// Streamer is implemented by runners that can attach the child process
// directly to this process's standard streams. Hook dispatch uses it so
// hook output reaches Git unchanged.
type Streamer interface {
	RunStreaming(program string, args ...string) (int, error)
}
