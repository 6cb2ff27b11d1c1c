// Package options defines the option interfaces accepted by synfs constructors
// and operations.
package options

// NewSessionOption is an option applied to a session at construction time.
type NewSessionOption[T any] interface {
	// Apply applies the option to the session under construction.
	Apply(*T)
	// NewSessionOptionName returns the name of the option.
	NewSessionOptionName() string
}

// ApplySessionOptions applies each option to the session under construction.
func ApplySessionOptions[T any](session *T, opts ...NewSessionOption[T]) {
	for _, opt := range opts {
		opt.Apply(session)
	}
}

// NewClientOption is an option applied to a backend client at construction time.
type NewClientOption[T any] interface {
	// Apply applies the option to the client under construction.
	Apply(*T)
	// NewClientOptionName returns the name of the option.
	NewClientOptionName() string
}

// ApplyClientOptions applies each option to the client under construction.
func ApplyClientOptions[T any](client *T, opts ...NewClientOption[T]) {
	for _, opt := range opts {
		opt.Apply(client)
	}
}

// NewStoreOption is an option applied to a transfer store at construction time.
type NewStoreOption[T any] interface {
	// Apply applies the option to the store under construction.
	Apply(*T)
	// NewStoreOptionName returns the name of the option.
	NewStoreOptionName() string
}

// ApplyStoreOptions applies each option to the store under construction.
func ApplyStoreOptions[T any](store *T, opts ...NewStoreOption[T]) {
	for _, opt := range opts {
		opt.Apply(store)
	}
}

// UploadOption interface contains function that should be implemented by any custom option to qualify as an upload option.
// Example:
// ```
//
//	type SetProvenanceUploadOption{}
//	func (o SetProvenanceUploadOption) UploadOptionName() string {
//		return "set provenance"
//	}
//	func (o SetProvenanceUploadOption) Activity() string {
//		return o.activity
//	}
//
// ```
type UploadOption interface {
	UploadOptionName() string
}
