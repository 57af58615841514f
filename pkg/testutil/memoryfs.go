package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage.
// Paths are normalized with filepath.Clean; relative paths are rooted
// at "/", mirroring a process whose working directory is the repo root.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode

	// errorPaths injects a failure for a specific normalized path,
	// exercising the installer's abort-on-first-failure contract.
	errorPaths map[string]error
}

type memNode struct {
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates an empty in-memory filesystem with a root
// directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			"/": {mode: 0o755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[m.normalize(path)] = err
}

func (m *MemoryFS) normalize(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) injected(path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return err
	}
	return nil
}

// Stat implements types.FS.
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := m.normalize(name)
	if err := m.injected(path); err != nil {
		return nil, err
	}
	node, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &memInfo{name: filepath.Base(path), node: node}, nil
}

// ReadFile implements types.FS.
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := m.normalize(name)
	if err := m.injected(path); err != nil {
		return nil, err
	}
	node, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	out := make([]byte, len(node.content))
	copy(out, node.content)
	return out, nil
}

// WriteFile implements types.FS. Parent directories must exist, like
// os.WriteFile.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalize(name)
	if err := m.injected(path); err != nil {
		return err
	}
	parent, ok := m.nodes[filepath.Dir(path)]
	if !ok || !parent.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.nodes[path] = &memNode{mode: perm, modTime: time.Now(), content: content}
	return nil
}

// MkdirAll implements types.FS.
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	full := m.normalize(path)
	if err := m.injected(full); err != nil {
		return err
	}

	cur := "/"
	for _, part := range strings.Split(strings.Trim(full, "/"), "/") {
		if part == "" {
			continue
		}
		cur = filepath.Join(cur, part)
		if node, ok := m.nodes[cur]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: fs.ErrExist}
			}
			continue
		}
		m.nodes[cur] = &memNode{mode: perm | fs.ModeDir, modTime: time.Now(), isDir: true}
	}
	return nil
}

// Chmod implements types.FS.
func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalize(name)
	if err := m.injected(path); err != nil {
		return err
	}
	node, ok := m.nodes[path]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	node.mode = mode | (node.mode & fs.ModeDir)
	return nil
}

// Remove implements types.FS.
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalize(name)
	if err := m.injected(path); err != nil {
		return err
	}
	if _, ok := m.nodes[path]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.nodes, path)
	return nil
}

// RemoveAll implements types.FS.
func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	full := m.normalize(path)
	if err := m.injected(full); err != nil {
		return err
	}
	prefix := full + "/"
	for p := range m.nodes {
		if p == full || strings.HasPrefix(p, prefix) {
			delete(m.nodes, p)
		}
	}
	return nil
}

// Exists reports whether a file or directory exists at path.
func (m *MemoryFS) Exists(path string) bool {
	_, err := m.Stat(path)
	return err == nil
}

// ReadString returns the content of a file as a string, or "" with a
// test-visible failure left to the caller's assertion.
func (m *MemoryFS) ReadString(path string) string {
	data, err := m.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// Mode returns the file mode recorded for path.
func (m *MemoryFS) Mode(path string) fs.FileMode {
	info, err := m.Stat(path)
	if err != nil {
		return 0
	}
	return info.Mode()
}

// Paths returns all known paths, sorted, for debugging test failures.
func (m *MemoryFS) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.nodes))
	for p := range m.nodes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

type memInfo struct {
	name string
	node *memNode
}

func (i *memInfo) Name() string       { return i.name }
func (i *memInfo) Size() int64        { return int64(len(i.node.content)) }
func (i *memInfo) Mode() fs.FileMode  { return i.node.mode }
func (i *memInfo) ModTime() time.Time { return i.node.modTime }
func (i *memInfo) IsDir() bool        { return i.node.isDir }
func (i *memInfo) Sys() interface{}   { return nil }
