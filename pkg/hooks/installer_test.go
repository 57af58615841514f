package hooks

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/testutil"
)

func TestInstallWritesAllWrappers(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	require.NoError(t, Install(memfs, ".samoyed"))

	assert.Equal(t, "*", memfs.ReadString(filepath.Join(".samoyed", "_", ".gitignore")))

	require.Len(t, StandardHooks, 14)
	for _, hook := range StandardHooks {
		path := filepath.Join(".samoyed", "_", hook)
		body := memfs.ReadString(path)
		assert.Contains(t, body, `samoyed-hook "$0" "$@"`, hook)
		assert.NotContains(t, body, "\r\n", hook)
		assert.Equal(t, fs.FileMode(0o755), memfs.Mode(path)&0o777, hook)
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	require.NoError(t, Install(memfs, ".samoyed"))

	first := make(map[string]string)
	for _, hook := range StandardHooks {
		path := filepath.Join(".samoyed", "_", hook)
		first[path] = memfs.ReadString(path)
	}

	require.NoError(t, Install(memfs, ".samoyed"))
	for path, body := range first {
		assert.Equal(t, body, memfs.ReadString(path))
	}
}

func TestInstallRewritesModifiedWrappers(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	require.NoError(t, Install(memfs, ".samoyed"))

	target := filepath.Join(".samoyed", "_", "pre-commit")
	require.NoError(t, memfs.WriteFile(target, []byte("tampered"), 0o644))

	require.NoError(t, Install(memfs, ".samoyed"))
	assert.Contains(t, memfs.ReadString(target), "samoyed-hook")
}

func TestInstallAbortsOnFirstFailure(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	memfs.InjectError(filepath.Join(".samoyed", "_", "commit-msg"), fmt.Errorf("disk full"))

	err := Install(memfs, ".samoyed")
	require.Error(t, err)
	assert.Equal(t, errors.ErrHookIO, errors.GetErrorCode(err))
	assert.Equal(t, errors.ExitIOErr, errors.ExitCode(err))
}

func TestSeedExamplesCreatesOnlyMissing(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	require.NoError(t, SeedExamples(memfs, ".samoyed"))

	preCommit := filepath.Join(".samoyed", "scripts", "pre-commit")
	prePush := filepath.Join(".samoyed", "scripts", "pre-push")
	assert.True(t, memfs.Exists(preCommit))
	assert.True(t, memfs.Exists(prePush))
	assert.Equal(t, fs.FileMode(0o755), memfs.Mode(preCommit)&0o777)
}

func TestSeedExamplesPreservesUserEdits(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	preCommit := filepath.Join(".samoyed", "scripts", "pre-commit")
	require.NoError(t, memfs.MkdirAll(filepath.Join(".samoyed", "scripts"), 0o755))
	require.NoError(t, memfs.WriteFile(preCommit, []byte("#!/bin/sh\nmy checks\n"), 0o755))

	require.NoError(t, SeedExamples(memfs, ".samoyed"))
	assert.Equal(t, "#!/bin/sh\nmy checks\n", memfs.ReadString(preCommit))
}

func TestIsStandardHook(t *testing.T) {
	assert.True(t, IsStandardHook("pre-commit"))
	assert.True(t, IsStandardHook("prepare-commit-msg"))
	assert.False(t, IsStandardHook("pre-receive"))
	assert.False(t, IsStandardHook(""))
}
