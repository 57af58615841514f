// Package hooks installs the Git hook wrapper files samoyed manages.
package hooks

// StandardHooks is the fixed set of client-side Git hooks samoyed
// installs wrappers for. Server-side hooks (pre-receive, update,
// post-receive) are deliberately absent: samoyed manages hooks in a
// developer's working copy.
var StandardHooks = []string{
	"applypatch-msg",
	"commit-msg",
	"post-applypatch",
	"post-checkout",
	"post-commit",
	"post-merge",
	"post-rewrite",
	"pre-applypatch",
	"pre-auto-gc",
	"pre-commit",
	"pre-merge-commit",
	"pre-push",
	"pre-rebase",
	"prepare-commit-msg",
}

// IsStandardHook reports whether name is one of the managed Git hooks.
func IsStandardHook(name string) bool {
	for _, h := range StandardHooks {
		if h == name {
			return true
		}
	}
	return false
}
