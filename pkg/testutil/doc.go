// Package testutil provides in-memory implementations of the samoyed
// capability interfaces (types.FS, types.Environment,
// types.CommandRunner) for use in unit tests. Nothing in this package
// touches the real OS.
package testutil
