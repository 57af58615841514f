package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutthead/samoyed-sub000/pkg/config"
	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/hooks"
	"github.com/nutthead/samoyed-sub000/pkg/testutil"
	"github.com/nutthead/samoyed-sub000/pkg/types"
)

func gitRepo(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	memfs := testutil.NewMemoryFS()
	require.NoError(t, memfs.MkdirAll(".git", 0o755))
	return memfs
}

func TestInitDefaultDirectory(t *testing.T) {
	memfs := gitRepo(t)
	runner := testutil.NewFakeRunner()

	result, err := Init(InitOptions{FS: memfs, Runner: runner})
	require.NoError(t, err)
	assert.Equal(t, ".samoyed", result.HooksDir)
	assert.Equal(t, ".samoyed/_", result.HooksPath)
	assert.True(t, result.ConfigCreated)

	assert.Contains(t, runner.CommandLines(), "git config core.hooksPath .samoyed/_")
	assert.Equal(t, "*", memfs.ReadString(filepath.Join(".samoyed", "_", ".gitignore")))
	for _, hook := range hooks.StandardHooks {
		assert.True(t, memfs.Exists(filepath.Join(".samoyed", "_", hook)), hook)
	}
	assert.True(t, memfs.Exists("samoyed.toml"))
}

func TestInitCustomDirectoryAndProjectType(t *testing.T) {
	memfs := gitRepo(t)
	runner := testutil.NewFakeRunner()

	result, err := Init(InitOptions{FS: memfs, Runner: runner, HooksDir: "tools/hooks", ProjectType: "go"})
	require.NoError(t, err)
	assert.Equal(t, "tools/hooks/_", result.HooksPath)

	cfg, err := config.Load(memfs, "samoyed.toml")
	require.NoError(t, err)
	assert.Equal(t, "tools/hooks", cfg.Settings.HookDirectory)
	cmd, ok := cfg.Command("pre-commit")
	require.True(t, ok)
	assert.Contains(t, cmd, "go vet")
}

func TestInitRejectsTraversalWithoutMutation(t *testing.T) {
	memfs := gitRepo(t)
	runner := testutil.NewFakeRunner()
	before := memfs.Paths()

	_, err := Init(InitOptions{FS: memfs, Runner: runner, HooksDir: "../escape"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrPathTraversal, errors.GetErrorCode(err))
	assert.Equal(t, before, memfs.Paths(), "no filesystem mutation on rejected name")
	assert.Empty(t, runner.Calls, "git never invoked on rejected name")
}

func TestInitOutsideRepository(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	runner := testutil.NewFakeRunner()

	_, err := Init(InitOptions{FS: memfs, Runner: runner})
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotGitRepository, errors.GetErrorCode(err))
	assert.Equal(t, errors.ExitNoInput, errors.ExitCode(err))
}

func TestInitGitMissingStopsBeforeInstall(t *testing.T) {
	memfs := gitRepo(t)
	runner := testutil.NewFakeRunner()
	runner.Script("git --version", testutil.RunnerResponse{Result: types.RunResult{ExitCode: 1}})

	_, err := Init(InitOptions{FS: memfs, Runner: runner})
	require.Error(t, err)
	assert.Equal(t, errors.ErrGitNotFound, errors.GetErrorCode(err))
	assert.False(t, memfs.Exists(".samoyed"))
}

func TestInitPreservesExistingConfig(t *testing.T) {
	memfs := gitRepo(t)
	require.NoError(t, memfs.WriteFile("samoyed.toml", []byte("[hooks]\npre-commit = \"mine\"\n"), 0o644))

	result, err := Init(InitOptions{FS: memfs, Runner: testutil.NewFakeRunner()})
	require.NoError(t, err)
	assert.False(t, result.ConfigCreated)
	assert.Contains(t, memfs.ReadString("samoyed.toml"), "mine")
}

func TestInitIsRerunnable(t *testing.T) {
	memfs := gitRepo(t)
	runner := testutil.NewFakeRunner()

	_, err := Init(InitOptions{FS: memfs, Runner: runner})
	require.NoError(t, err)

	// User edits a fallback script, then re-runs init.
	preCommit := filepath.Join(".samoyed", "scripts", "pre-commit")
	require.NoError(t, memfs.WriteFile(preCommit, []byte("#!/bin/sh\nmy checks\n"), 0o755))

	_, err = Init(InitOptions{FS: memfs, Runner: runner})
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nmy checks\n", memfs.ReadString(preCommit))
}
