// Package sink provides output destinations for generated modules.
//
// Paths handed to a sink are relative and slash-separated. Both sinks
// reject anything ValidatePath refuses and honour context cancellation.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// OutputSink receives generated file content. Implementations must be safe
// for concurrent calls.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

var (
	// ErrInvalidPath wraps every ValidatePath failure.
	ErrInvalidPath = errors.New("invalid path")

	// ErrExists is returned by a FilesystemSink with Overwrite disabled when
	// the destination already exists.
	ErrExists = errors.New("file already exists")
)

const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o755
	tempPattern     = ".frontgen-*.tmp"
)

// FilesystemSink writes to a directory on the local filesystem.
type FilesystemSink struct {
	// Root is the destination directory. It is created on first write.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false, WriteFile fails with
	// ErrExists.
	Overwrite bool

	// SkipUnchanged leaves a file untouched when it already holds the
	// content, so watchers and bundlers see no modification.
	SkipUnchanged bool
}

// NewFilesystemSink returns a sink rooted at root that overwrites changed
// files and skips identical ones.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{
		Root:          root,
		Mode:          defaultFileMode,
		Overwrite:     true,
		SkipUnchanged: true,
	}
}

// WriteFile stores content at rel below Root. Content is staged in a temp
// file next to the destination and then moved into place, so readers never
// observe a partial file.
func (s *FilesystemSink) WriteFile(ctx context.Context, rel string, content []byte) error {
	if err := ValidatePath(rel); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dest, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if s.Overwrite && s.SkipUnchanged && sameContent(dest, content) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), defaultDirMode); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	tmp, err := s.stage(dest, content)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(tmp, dest, rel)
}

// stage writes content to a fresh temp file in the destination directory and
// returns its name.
func (s *FilesystemSink) stage(dest string, content []byte) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(dest), tempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := f.Name()

	_, err = f.Write(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, s.mode())
	}
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return name, nil
}

// commit moves the staged file to dest. Without Overwrite a hard link is used
// so that an existing destination fails atomically.
func (s *FilesystemSink) commit(tmp, dest, rel string) error {
	if s.Overwrite {
		if err := os.Rename(tmp, dest); err != nil {
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
		return nil
	}
	if err := os.Link(tmp, dest); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %q", ErrExists, rel)
		}
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

func (s *FilesystemSink) mode() os.FileMode {
	if s.Mode == 0 {
		return defaultFileMode
	}
	return s.Mode
}

// resolve joins rel onto Root and rejects results outside Root.
func (s *FilesystemSink) resolve(rel string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root directory: %w", err)
	}
	dest := filepath.Join(root, filepath.FromSlash(rel))
	if r, err := filepath.Rel(root, dest); err != nil || !filepath.IsLocal(r) {
		return "", fmt.Errorf("path escapes root directory: %q", rel)
	}
	return dest, nil
}

func sameContent(file string, content []byte) bool {
	existing, err := os.ReadFile(file)
	return err == nil && bytes.Equal(existing, content)
}

// MemorySink stores generated files in memory. All operations are safe for
// concurrent use and never share byte slices with callers.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under rel.
func (s *MemorySink) WriteFile(ctx context.Context, rel string, content []byte) error {
	if err := ValidatePath(rel); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[rel] = bytes.Clone(content)
	return nil
}

// Paths returns the written paths in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.files))
}

// Get returns the content stored at rel, or nil.
func (s *MemorySink) Get(rel string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if content, ok := s.files[rel]; ok {
		return bytes.Clone(content)
	}
	return nil
}

// ValidatePath reports whether p is usable as an output path: non-empty,
// relative, slash-separated, clean and free of ".." components. Drive
// letters are rejected on every platform. Errors wrap ErrInvalidPath.
func ValidatePath(p string) error {
	var problem string
	switch {
	case p == "":
		problem = "path is empty"
	case path.IsAbs(p) || filepath.IsAbs(p) || hasDriveLetter(p):
		problem = "absolute paths not allowed"
	case slices.Contains(strings.Split(filepath.ToSlash(p), "/"), ".."):
		problem = "path traversal not allowed"
	case path.Clean(filepath.ToSlash(p)) != filepath.ToSlash(p):
		problem = fmt.Sprintf("path is not clean (expected %q)", path.Clean(filepath.ToSlash(p)))
	default:
		return nil
	}
	return fmt.Errorf("%w %q: %s", ErrInvalidPath, p, problem)
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0] | 0x20
	return c >= 'a' && c <= 'z'
}
