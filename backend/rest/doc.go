// Package rest implements synfs.Client against the repository's REST API.
//
// # Usage
//
//	client, err := rest.NewClient(
//	    rest.WithAuthToken(os.Getenv("SYNAPSE_AUTH_TOKEN")),
//	)
//	if err != nil {
//	    return err
//	}
//	session := synfs.New(client, "syn12345678")
//
// Entity operations (lookup, create, list, move, rename, delete) map onto
// the /repo/v1 service; file content moves through /file/v1. Uploads follow
// the container's upload destination: native destinations use the multipart
// protocol with presigned part URLs, while external S3, Google Cloud, and
// URL-addressed (SFTP) storage locations are written directly through the
// matching storage.Store and then registered as external file handles.
// Import the storage backends the installation's storage locations need,
// or blank-import storage/all to pull in every one.
//
// # Authentication
//
// Requests authenticate with a personal access token sent as a bearer
// credential. The token comes from WithAuthToken or, failing that, the
// SYNAPSE_AUTH_TOKEN environment variable. Presigned part PUTs and download
// URLs are deliberately sent without the bearer header, since their
// signatures embed their own authorization.
//
// # Retries
//
// Throttled (429) and 5xx responses are retried with backoff, three times by
// default. The retry budget applies per request; multipart uploads therefore
// survive transient failures of individual part calls without restarting the
// whole transfer.
package rest
