/*
Package sftp registers an SFTP transfer store. The rest backend delegates to
it for files whose storage location is a plain sftp:// URL.

# Usage

Rely on github.com/c2fo/synfs/storage

	import (
	    "github.com/c2fo/synfs/storage"
	    _ "github.com/c2fo/synfs/storage/sftp"
	)

	func UseStore() error {
	    store, err := storage.Lookup(sftp.Scheme)
	    ...
	}

Or call directly:

	import "github.com/c2fo/synfs/storage/sftp"

	func DoSomething() {
	    store := sftp.NewStore(
	        sftp.WithOptions(
	            sftp.Options{
	                Username:    "user",
	                KeyFilePath: "/home/user/.ssh/id_ed25519",
	            },
	        ),
	    )
	    ...
	}

# Authentication

Authentication resolves from Options first, then from the environment:

  - Username:       Options.Username, then SYNFS_SFTP_USERNAME
  - Password:       Options.Password, then SYNFS_SFTP_PASSWORD
  - Private key:    Options.KeyFilePath, then SYNFS_SFTP_KEYFILE, with an
    optional passphrase from Options.KeyPassphrase or
    SYNFS_SFTP_KEYFILE_PASSPHRASE

Password and key methods are both offered when both are configured.

# Host key checking

The remote host key is checked against known_hosts. Resolution order:

 1. Options.KnownHostsCallback, an ssh.HostKeyCallback used as-is
 2. Options.KnownHostsString, a single authorized-key line pinned as the only
    accepted key
 3. Options.KnownHostsFile, then the SYNFS_SFTP_KNOWN_HOSTS_FILE env var
 4. SYNFS_SFTP_INSECURE_KNOWN_HOSTS set to any value disables checking
 5. ~/.ssh/known_hosts plus /etc/ssh/ssh_known_hosts

Hosts default to port 22 when the storage location URL carries no port.
*/
package sftp
