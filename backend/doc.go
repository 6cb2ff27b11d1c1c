/*
Package backend's children implement synfs.Client, the capability interface a
Session drives. A Session never cares which implementation it holds:

	package main

	import (
	    "os"

	    "github.com/c2fo/synfs"
	    "github.com/c2fo/synfs/backend/rest"
	)

	func main() {
	    client, err := rest.NewClient(rest.WithAuthToken(os.Getenv("SYNAPSE_AUTH_TOKEN")))
	    if err != nil {
	        panic(err)
	    }

	    session := synfs.New(client, "syn12345678")
	    // begin using the session
	}

Two implementations ship with the module:

  - rest: the production client, speaking the repository's REST API
  - mem: an in-memory store for tests and local development

# Development

To write your own backend, implement every method of synfs.Client with the
documented semantics; mem is the reference implementation, and the round-trip
tests in the root package show the behavior a Session expects. Child-by-name
lookups must report absence as ("", nil) rather than an error, CreateFile
must upsert, and CreateFolder must be strict.
*/
package backend
