/*
Package synsimple provides a basic and easy to use way to open a session
against the repository using the same credentials the official clients use.

# Usage

Just import synsimple.

	package main

	import (
	    "context"

	    "github.com/c2fo/synfs/synsimple"
	)

	func DoSomething() error {
	    session, err := synsimple.NewSession("syn12345678")
	    if err != nil {
	        return err
	    }

	    return session.Upload(context.Background(), "results", "./results")
	}

# Authentication

The personal access token resolves from the SYNAPSE_AUTH_TOKEN environment
variable first, then from authentication.authtoken in ~/.synapseConfig. The
endpoints.repoendpoint key, when present, points the client at a different
repository instance.

synsimple only provides default initialization. To inject a logger on the
rest client, a custom http timeout, or a mock client for testing, build the
client yourself; see github.com/c2fo/synfs/backend/rest.

Importing synsimple registers every storage backend, so uploads and downloads
against external S3, Google Cloud, and SFTP storage locations work without
further wiring.
*/
package synsimple
