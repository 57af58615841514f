// Package types defines the capability interfaces shared across
// samoyed: filesystem access, environment lookup and subprocess
// execution. Production implementations live in pkg/filesystem,
// pkg/environment and pkg/executor; pkg/testutil provides in-memory
// fakes. Every component takes these as parameters, so nothing in the
// engine touches the OS directly.
package types
