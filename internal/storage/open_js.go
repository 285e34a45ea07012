//go:build js && wasm

package storage

import (
	"context"
	"fmt"

	"github.com/hack-pad/hackpadfs/indexeddb"
)

// Open returns a Store backed by an IndexedDB database named dir, so bindings survive reloads
// when the client runs in a browser.
func Open(dir string) (Store, error) {
	fsys, err := indexeddb.NewFS(context.Background(), dir, indexeddb.Options{})
	if err != nil {
		return nil, fmt.Errorf("storage: indexeddb %s: %w", dir, err)
	}
	return NewFS(fsys, "."), nil
}
