// Package paths validates user-supplied hook directory names and
// resolves the per-user locations samoyed reads from.
//
// Validation is pure string inspection: it never touches the
// filesystem, so a hostile name is rejected before anything is
// created or configured.
package paths
