// Package filesystem provides production implementations of types.FS.
//
// NewOS wraps the real OS filesystem. NewAferoFS adapts any afero.Fs,
// giving callers an in-memory backend (afero.NewMemMapFs) or any other
// afero-compatible one behind the same interface.
package filesystem
