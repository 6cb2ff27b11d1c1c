package gs

import (
	"context"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/storage"
)

// Scheme defines the storage type.
const Scheme = "gs"

// Options holds Google Cloud Storage specific options. Currently only client
// options are used.
type Options struct {
	APIKey         string   `json:"apiKey,omitempty"`
	CredentialFile string   `json:"credentialFilePath,omitempty"`
	Endpoint       string   `json:"endpoint,omitempty"`
	Scopes         []string `json:"scopes,omitempty"`
}

// clientOptions translates Options into google api client options. APIKey and
// CredentialFile are mutually exclusive credentials; the first one set wins.
func (o Options) clientOptions() []option.ClientOption {
	var googleOpts []option.ClientOption
	switch {
	case o.APIKey != "":
		googleOpts = append(googleOpts, option.WithAPIKey(o.APIKey))
	case o.CredentialFile != "":
		googleOpts = append(googleOpts, option.WithCredentialsFile(o.CredentialFile))
	}
	if o.Endpoint != "" {
		googleOpts = append(googleOpts, option.WithEndpoint(o.Endpoint))
	}
	if len(o.Scopes) > 0 {
		googleOpts = append(googleOpts, option.WithScopes(o.Scopes...))
	}
	return googleOpts
}

// Store moves file bytes between the local filesystem and Google Cloud
// Storage buckets.
type Store struct {
	client  *gcs.Client
	options Options
}

// NewStore initializer for Store. Accepts zero or more store options.
func NewStore(opts ...options.NewStoreOption[Store]) *Store {
	s := &Store{}
	options.ApplyStoreOptions(s, opts...)
	return s
}

// Scheme returns "gs", the scheme this store registers under.
func (s *Store) Scheme() string {
	return Scheme
}

// Upload copies the local file at localPath to key within the container
// bucket. The object only becomes visible once the writer commits, so a
// failed upload never leaves a partial object behind.
func (s *Store) Upload(ctx context.Context, localPath, container, key string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	w := client.Bucket(container).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close() //nolint:errcheck // the copy error wins
		return err
	}
	return w.Close()
}

// Download copies key within the container bucket to targetPath on the local
// filesystem.
func (s *Store) Download(ctx context.Context, container, key, targetPath string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	r, err := client.Bucket(container).Object(key).NewReader(ctx)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck // read-only handle

	f, err := os.Create(targetPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close() //nolint:errcheck // the copy error wins
		return err
	}
	return f.Close()
}

// getClient returns the underlying google storage client, creating it, if
// necessary. See doc.go Overview for authentication resolution.
func (s *Store) getClient(ctx context.Context) (*gcs.Client, error) {
	if s.client == nil {
		client, err := gcs.NewClient(ctx, s.options.clientOptions()...)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	return s.client, nil
}

func init() {
	// registers a default store
	storage.Register(Scheme, NewStore())
}
