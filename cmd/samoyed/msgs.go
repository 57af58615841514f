package main

// Short messages (one-liners)
const (
	MsgRootShort = "Native Git hooks manager"
	MsgRootLong  = `samoyed manages Git client-side hooks without a separate runtime.

'samoyed init' writes small wrapper scripts into your repository and
points Git's core.hooksPath at them. When Git fires a hook, the wrapper
runs the command configured in samoyed.toml, or a fallback script under
the hooks directory, and relays the exit code back to Git.`

	MsgInitShort = "Install Git hooks into the current repository"
	MsgInitLong  = `Install samoyed's hook wrappers and configure core.hooksPath.

The optional dirname argument chooses the hooks directory (default
.samoyed); it must be a relative path inside the repository. A starter
samoyed.toml is created if none exists, optionally seeded for a project
type.`
	MsgInitExample = `  samoyed init
  samoyed init --project-type rust
  samoyed init tools/hooks`

	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProjectType = "Seed samoyed.toml for a project type (rust, go, node, python)"

	MsgInitDone          = "Git hooks installed in %s, core.hooksPath set to %s"
	MsgInitConfigCreated = "Created starter %s"
	MsgInitConfigKept    = "Existing %s left untouched"
)
