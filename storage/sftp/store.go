package sftp

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"sync"

	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/storage"
)

// Scheme defines the storage type.
const Scheme = "sftp"

// ReadWriteSeekCloser is the slice of sftp.File behavior transfers use.
type ReadWriteSeekCloser interface {
	io.ReadWriteSeeker
	io.Closer
}

// Client is the subset of sftp client behavior the store uses. It decouples
// transfers from a live ssh connection so tests can swap in a fake.
type Client interface {
	Open(path string) (ReadWriteSeekCloser, error)
	Create(path string) (ReadWriteSeekCloser, error)
	MkdirAll(path string) error
	io.Closer
}

// Store moves file bytes between the local filesystem and hosts reachable
// over SFTP. Connections are dialed lazily and cached per host.
type Store struct {
	options Options

	mu      sync.Mutex
	client  Client // injected via WithClient, used for every host
	clients map[string]Client
}

// NewStore initializer for Store. Accepts zero or more store options.
func NewStore(opts ...options.NewStoreOption[Store]) *Store {
	s := &Store{clients: make(map[string]Client)}
	options.ApplyStoreOptions(s, opts...)
	return s
}

// Scheme returns "sftp", the scheme this store registers under.
func (s *Store) Scheme() string {
	return Scheme
}

// Upload copies the local file at localPath to key on the container host,
// creating remote parent directories as needed.
func (s *Store) Upload(_ context.Context, localPath, container, key string) error {
	client, err := s.getClient(container)
	if err != nil {
		return err
	}

	local, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer local.Close() //nolint:errcheck // read-only handle

	if dir := path.Dir(key); dir != "." {
		if err := client.MkdirAll(dir); err != nil {
			return err
		}
	}

	remote, err := client.Create(key)
	if err != nil {
		return err
	}
	if _, err := io.Copy(remote, local); err != nil {
		remote.Close() //nolint:errcheck // the copy error wins
		return err
	}
	return remote.Close()
}

// Download copies key on the container host to targetPath on the local
// filesystem.
func (s *Store) Download(_ context.Context, container, key, targetPath string) error {
	client, err := s.getClient(container)
	if err != nil {
		return err
	}

	remote, err := client.Open(key)
	if err != nil {
		return err
	}
	defer remote.Close() //nolint:errcheck // read-only handle

	local, err := os.Create(targetPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(local, remote); err != nil {
		local.Close() //nolint:errcheck // the copy error wins
		return err
	}
	return local.Close()
}

// Close closes every open connection. The store dials again on the next
// transfer.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.client != nil {
		errs = append(errs, s.client.Close())
	}
	for host, client := range s.clients {
		errs = append(errs, client.Close())
		delete(s.clients, host)
	}
	return errors.Join(errs...)
}

// getClient returns the connection for host, dialing it if necessary. An
// injected client takes precedence for every host.
func (s *Store) getClient(host string) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	if client, ok := s.clients[host]; ok {
		return client, nil
	}
	client, err := getClient(host, s.options)
	if err != nil {
		return nil, err
	}
	s.clients[host] = client
	return client, nil
}

func init() {
	// registers a default store
	storage.Register(Scheme, NewStore())
}
