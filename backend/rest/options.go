package rest

import (
	"time"
)

// DefaultEndpoint is the hosted production stack. Both the /repo/v1 and
// /file/v1 services hang off this base.
const DefaultEndpoint = "https://repo-prod.prod.sagebase.org"

// Options holds configuration options for the REST Client.
type Options struct {
	// Endpoint is the base URL of the repository services (default:
	// DefaultEndpoint). A trailing slash is stripped.
	Endpoint string

	// AuthToken is the personal access token sent as a bearer credential
	// (required). Falls back to the SYNAPSE_AUTH_TOKEN environment variable.
	AuthToken string

	// RetryCount is the number of retry attempts for throttled or failing
	// requests (default: 3).
	RetryCount int

	// Timeout bounds each HTTP request. Zero means no client-side timeout;
	// cancellation is then driven entirely by the caller's context.
	Timeout time.Duration

	// PartSize is the size of multipart upload parts (default: 8MB). The
	// service rejects parts under 5MB except the last.
	PartSize int64
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		Endpoint:   DefaultEndpoint,
		RetryCount: 3,
		PartSize:   8 * 1024 * 1024, // 8MB default part size
	}
}
