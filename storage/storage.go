// Package storage defines the byte-transfer interface used when file content
// lives outside the repository's native store, plus a registry mapping URL
// schemes to implementations. External storage locations surface in upload
// destinations and file-handle URLs; the rest backend looks the scheme up
// here and delegates the actual byte movement.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Store moves file bytes between the local filesystem and one kind of
// external storage. Implementations register themselves by scheme in init.
type Store interface {
	// Scheme returns the URL scheme this store serves, such as "s3".
	Scheme() string

	// Upload copies the local file at localPath to key within container.
	Upload(ctx context.Context, localPath, container, key string) error

	// Download copies key within container to targetPath on the local
	// filesystem.
	Download(ctx context.Context, container, key, targetPath string) error
}

// ErrUnknownScheme is returned by Lookup for schemes with no registered Store.
var ErrUnknownScheme = errors.New("no storage backend registered for scheme")

var mmu sync.RWMutex
var m map[string]Store

// Register a new store in the scheme map
func Register(scheme string, s Store) {
	mmu.Lock()
	m[scheme] = s
	mmu.Unlock()
}

// Unregister unregisters a store from the scheme map
func Unregister(scheme string) {
	mmu.Lock()
	delete(m, scheme)
	mmu.Unlock()
}

// UnregisterAll unregisters all stores from the scheme map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]Store)
	mmu.Unlock()
}

// Lookup returns the store registered for scheme
func Lookup(scheme string) (Store, error) {
	mmu.RLock()
	defer mmu.RUnlock()
	s, ok := m[scheme]
	if !ok {
		return nil, fmt.Errorf("%q: %w", scheme, ErrUnknownScheme)
	}
	return s, nil
}

// RegisteredSchemes returns an array of registered scheme names
func RegisteredSchemes() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

func init() {
	m = make(map[string]Store)
}
