package errors

import (
	goerrors "errors"
)

// Process exit codes, following the sysexits.h convention.
const (
	ExitOK          = 0
	ExitUsage       = 64 // bad arguments, empty path
	ExitDataErr     = 65 // invalid or traversal path
	ExitNoInput     = 66 // not a Git repository
	ExitUnavailable = 69 // git executable not found
	ExitSoftware    = 70 // unclassified internal failure
	ExitIOErr       = 74 // filesystem failure
	ExitTempFail    = 75 // config lock contention, retryable
	ExitNoPerm      = 77 // permission denied
	ExitConfig      = 78 // configuration invalid
)

// defaultExitCode maps an error code to its sysexits process exit code.
// A hook's own nonzero exit never passes through here; dispatch
// propagates it verbatim.
func defaultExitCode(code ErrorCode) int {
	switch code {
	case ErrUsage, ErrPathEmpty:
		return ExitUsage
	case ErrPathTooLong, ErrPathTraversal, ErrPathAbsolute, ErrPathChars:
		return ExitDataErr
	case ErrNotGitRepository:
		return ExitNoInput
	case ErrGitNotFound:
		return ExitUnavailable
	case ErrHookIO:
		return ExitIOErr
	case ErrGitConfigLocked:
		return ExitTempFail
	case ErrGitPermission:
		return ExitNoPerm
	case ErrConfigParse, ErrConfigValid, ErrGitConfig:
		return ExitConfig
	default:
		return ExitSoftware
	}
}

// ExitCode returns the process exit code an error calls for.
// Non-SamoyedError values map to ExitSoftware.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var serr *SamoyedError
	if goerrors.As(err, &serr) {
		return serr.Exit
	}
	return ExitSoftware
}
