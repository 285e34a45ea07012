package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"

	"github.com/hack-pad/hackpadfs"
)

// ErrUnavailable is returned when the backing filesystem cannot be read or written.
var ErrUnavailable = errors.New("storage unavailable")

// Store is a synchronous string-keyed durable store (the desktop stand-in for browser local storage).
// Get reports ok=false for a key that was never set.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FS stores each key as one file under dir on a hackpadfs filesystem.
type FS struct {
	fs  hackpadfs.FS
	dir string
}

// NewFS returns a Store rooted at dir on fsys. dir uses io/fs path syntax (no leading slash);
// it is created on the first Set.
func NewFS(fsys hackpadfs.FS, dir string) *FS {
	return &FS{fs: fsys, dir: dir}
}

func (s *FS) filename(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return path.Join(s.dir, key+".json"), nil
}

// Get reads the value stored under key.
func (s *FS) Get(key string) (string, bool, error) {
	name, err := s.filename(key)
	if err != nil {
		return "", false, err
	}
	data, err := hackpadfs.ReadFile(s.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: read %s: %w: %w", key, ErrUnavailable, err)
	}
	return string(data), true, nil
}

// Set replaces the value stored under key.
func (s *FS) Set(key, value string) error {
	name, err := s.filename(key)
	if err != nil {
		return err
	}
	if s.dir != "" && s.dir != "." {
		if err := hackpadfs.MkdirAll(s.fs, s.dir, 0o755); err != nil {
			return fmt.Errorf("storage: mkdir %s: %w: %w", s.dir, ErrUnavailable, err)
		}
	}
	if err := hackpadfs.WriteFullFile(s.fs, name, []byte(value), 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w: %w", key, ErrUnavailable, err)
	}
	return nil
}
