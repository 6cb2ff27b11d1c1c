package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c2fo/synfs"
	"github.com/c2fo/synfs/backend/rest"
	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/synsimple"
)

// cfg resolves every setting with the same precedence: an explicitly set flag
// wins, then a SYNFS_* environment variable, then the flag default.
var cfg = viper.New()

// NewRoot returns the synctl command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "synctl",
		Short: "synctl operates on a Synapse project tree by path",
		Long: `synctl addresses entities of a Synapse-compatible repository by
slash-separated paths relative to a project root instead of by "syn" accession
ids. Authentication follows the platform convention: a personal access token
from --token, SYNAPSE_AUTH_TOKEN, or ~/.synapseConfig.`,
		Version:           Version(),
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("project", "p", "", "project id the session is rooted at, e.g. syn12345678")
	flags.String("config", synsimple.DefaultConfigPath, "client config file")
	flags.String("endpoint", "", "repository endpoint, overriding the config file")
	flags.String("token", "", "personal access token, overriding the config file and environment")
	flags.BoolP("verbose", "v", false, "log requests at debug level")

	cfg.SetEnvPrefix("SYNFS")
	cfg.AutomaticEnv()
	for _, name := range []string{"project", "config", "endpoint", "token", "verbose"} {
		_ = cfg.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newIDCmd(),
		newLsCmd(),
		newMkdirCmd(),
		newRmCmd(),
		newPutCmd(),
		newGetCmd(),
		newMvCmd(),
		newCpCmd(),
		newWhoamiCmd(),
		newVersionCmd(),
	)
	return root
}

// openSession builds the Session the tree commands operate through. It is a
// variable so command tests can substitute a session over the mem backend.
var openSession = defaultOpenSession

func defaultOpenSession() (*synfs.Session, error) {
	projectID := cfg.GetString("project")
	if projectID == "" {
		return nil, fmt.Errorf("%w: pass --project or set SYNFS_PROJECT", synsimple.ErrMissingProject)
	}

	client, err := openClient()
	if err != nil {
		return nil, err
	}
	return synfs.New(client, projectID, synfs.WithLogger(logger())), nil
}

// openClient builds the rest client from the merged settings without
// requiring a project id.
func openClient() (*rest.Client, error) {
	clientOpts := []options.NewClientOption[rest.Client]{rest.WithLogger(logger())}
	if endpoint := cfg.GetString("endpoint"); endpoint != "" {
		clientOpts = append(clientOpts, rest.WithEndpoint(endpoint))
	}
	if token := cfg.GetString("token"); token != "" {
		clientOpts = append(clientOpts, rest.WithAuthToken(token))
	}
	return synsimple.NewClientFromConfig(cfg.GetString("config"), clientOpts...)
}

// withSession opens a session, runs fn, and closes the session afterwards.
func withSession(fn func(session *synfs.Session) error) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close() //nolint:errcheck // the process is about to exit
	return fn(session)
}

func logger() *zap.Logger {
	if !cfg.GetBool("verbose") {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
