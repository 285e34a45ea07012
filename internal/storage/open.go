//go:build !js

package storage

import (
	"fmt"
	"path/filepath"

	osfs "github.com/hack-pad/hackpadfs/os"
)

// Open returns a Store persisting under the host directory dir (relative paths resolve against
// the working directory, like the engine's config/ folder).
func Open(dir string) (Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	fsys := osfs.NewFS()
	p, err := fsys.FromOSPath(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", dir, err)
	}
	return NewFS(fsys, p), nil
}
