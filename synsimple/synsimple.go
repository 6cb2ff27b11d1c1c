package synsimple

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/c2fo/synfs"
	"github.com/c2fo/synfs/backend/rest"
	"github.com/c2fo/synfs/options"
	_ "github.com/c2fo/synfs/storage/all" // register all storage backends
)

// DefaultConfigPath is the platform's conventional client configuration file.
// The same file serves the official clients, so credentials configured for
// them work here unchanged.
const DefaultConfigPath = "~/.synapseConfig"

var (
	ErrMissingToken   = errors.New("no personal access token found: set SYNAPSE_AUTH_TOKEN or authentication.authtoken in the config file")
	ErrMissingProject = errors.New("a project id is required to open a session")
)

// fileConfig is what the config file contributes: a token and optionally a
// repository endpoint.
type fileConfig struct {
	authToken string
	endpoint  string
}

// NewClient returns a rest client authenticated from SYNAPSE_AUTH_TOKEN and
// the default config file. Explicit options override both.
func NewClient(opts ...options.NewClientOption[rest.Client]) (*rest.Client, error) {
	return NewClientFromConfig(DefaultConfigPath, opts...)
}

// NewClientFromConfig is NewClient reading an alternate config file path. A
// missing file is not an error as long as the environment carries a token.
func NewClientFromConfig(configPath string, opts ...options.NewClientOption[rest.Client]) (*rest.Client, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	token := cfg.authToken
	if env := os.Getenv("SYNAPSE_AUTH_TOKEN"); env != "" {
		token = env
	}

	clientOpts := make([]options.NewClientOption[rest.Client], 0, len(opts)+2)
	if token != "" {
		clientOpts = append(clientOpts, rest.WithAuthToken(token))
	}
	if cfg.endpoint != "" {
		clientOpts = append(clientOpts, rest.WithEndpoint(cfg.endpoint))
	}
	// caller options come last so they win
	clientOpts = append(clientOpts, opts...)

	client, err := rest.NewClient(clientOpts...)
	if errors.Is(err, rest.ErrMissingToken) {
		// report the richer error naming every source this layer checks
		return nil, ErrMissingToken
	}
	return client, err
}

// NewSession returns a Session over a NewClient-built client, rooted at
// projectID.
func NewSession(projectID string, opts ...options.NewSessionOption[synfs.Session]) (*synfs.Session, error) {
	if projectID == "" {
		return nil, ErrMissingProject
	}

	client, err := NewClient()
	if err != nil {
		return nil, err
	}
	return synfs.New(client, projectID, opts...), nil
}

// loadConfig reads the INI config file the platform's clients share. The
// repoendpoint value conventionally includes the /repo/v1 suffix; the rest
// backend wants the bare host, so it is trimmed here.
func loadConfig(path string) (fileConfig, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fileConfig{}, err
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// the environment may still carry the token
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config %s: %w", expanded, err)
	}

	endpoint := strings.TrimSuffix(v.GetString("endpoints.repoendpoint"), "/")
	endpoint = strings.TrimSuffix(endpoint, "/repo/v1")

	return fileConfig{
		authToken: v.GetString("authentication.authtoken"),
		endpoint:  endpoint,
	}, nil
}
