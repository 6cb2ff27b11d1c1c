package sftp

import "github.com/c2fo/synfs/options"

const (
	optionNameClient  = "client"
	optionNameOptions = "options"
)

// WithClient returns clientOpt implementation of NewStoreOption
//
// WithClient is used to explicitly specify a Client to use for every host,
// for instance a fake in tests. It bypasses dialing entirely.
func WithClient(c Client) options.NewStoreOption[Store] {
	return &clientOpt{
		client: c,
	}
}

type clientOpt struct {
	client Client
}

func (ct *clientOpt) Apply(s *Store) {
	s.client = ct.client
}

func (ct *clientOpt) NewStoreOptionName() string {
	return optionNameClient
}

// WithOptions returns optionsOpt implementation of NewStoreOption
//
// WithOptions is used to specify options for the store.
// The options are used to authenticate connections.
func WithOptions(options Options) options.NewStoreOption[Store] {
	return &optionsOpt{
		options: options,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(s *Store) {
	s.options = o.options
}

func (o *optionsOpt) NewStoreOptionName() string {
	return optionNameOptions
}
