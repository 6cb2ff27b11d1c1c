/*
Package gs registers a Google Cloud Storage transfer store. The rest backend
delegates to it for files that live in user-owned GCS storage locations.

# Usage

Rely on github.com/c2fo/synfs/storage

	import (
	    "github.com/c2fo/synfs/storage"
	    _ "github.com/c2fo/synfs/storage/gs"
	)

	func UseStore() error {
	    store, err := storage.Lookup(gs.Scheme)
	    ...
	}

Or call directly:

	import "github.com/c2fo/synfs/storage/gs"

	func DoSomething() {
	    store := gs.NewStore(
	        gs.WithOptions(gs.Options{CredentialFile: "/path/to/creds.json"}),
	    )
	    ...
	}

# Authentication

With no options set, the client resolves credentials the standard Google way:
the GOOGLE_APPLICATION_CREDENTIALS environment variable, then gcloud
application-default credentials, then the metadata server when running on
GCP. Tests inject a client pointed at a fake server with WithClient.
*/
package gs
