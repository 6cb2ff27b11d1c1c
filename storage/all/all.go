// Package all registers every storage backend.
package all

import (
	_ "github.com/c2fo/synfs/storage/gs"   // register gs store
	_ "github.com/c2fo/synfs/storage/s3"   // register s3 store
	_ "github.com/c2fo/synfs/storage/sftp" // register sftp store
)
