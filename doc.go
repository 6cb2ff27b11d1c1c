/*
Package synfs provides path-based access to a Synapse-style dataset repository: a remote
content-management store whose files, folders, and projects are addressed by opaque stable
IDs ("syn12345678") and whose API is entirely ID-oriented.

Philosophy

Working against an ID-oriented repository API directly tends to look like

	folderID, err := lookupChild(projectID, "data")
	subID, err := lookupChild(folderID, "2024")
	fileID, err := lookupChild(subID, "counts.csv")
	// finally do something with fileID

Every caller ends up re-implementing the same child-by-name walk, the same existence
probes, and the same multi-step move/copy dances. synfs centralizes that: you address
entities with familiar slash-separated relative paths ("data/2024/counts.csv") rooted at a
project, and the Session takes care of resolution and the tree-aware operations built on
top of it (mkdir, remove, list, recursive upload and download, move, copy).

The repository guarantees that sibling names are unique under a parent, which is what
makes a path an unambiguous address. Everything else - identifier allocation, persistence,
the wire protocol - stays behind the Client interface, so the same Session logic runs
against the REST backend, the in-memory backend, or a mock.

Usage

The synsimple package is the quickest way in. It reads the auth token from
SYNAPSE_AUTH_TOKEN or ~/.synapseConfig and wires up the REST backend:

	session, err := synsimple.NewSession("syn12345678")
	if err != nil {
		return err
	}
	defer session.Close()

	ctx := context.Background()

	folderID, err := session.Mkdir(ctx, "results/2024")
	_, err = session.Upload(ctx, "local/counts.csv", "results/2024/counts.csv")
	err = session.Download(ctx, "results/2024/counts.csv", "/tmp/counts.csv")
	err = session.Move(ctx, "results/2024/counts.csv", "archive/counts-2024.csv")
	err = session.Copy(ctx, "archive", "archive-backup")

Sessions can be constructed directly when you need control over the client:

	client, err := rest.NewClient(
		rest.WithAuthToken(token),
		rest.WithEndpoint("https://repo-prod.prod.sagebase.org"),
	)
	session := synfs.New(client, "syn12345678", synfs.WithLogger(logger))

Existence checks never error on absence:

	ok, err := session.DirExists(ctx, "results/2024") // true, nil
	ok, err = session.FileExists(ctx, "results")      // false, nil - it's a folder

Storage backends

File content does not always live in the repository's own store. Projects may configure
external storage locations (S3 buckets, Google Cloud buckets, SFTP servers); the
storage package registers a transfer store per scheme and the REST backend picks the
right one based on the upload destination of the target folder. Import storage/all to
register every store, or import individual stores to keep the dependency footprint down.

Caveats

Move is a relocate followed by a rename, and Copy stages through a transient folder;
neither is atomic. A failure mid-operation can leave the entity moved-but-not-renamed or
leave staging residue behind. The failure modes are documented on each method rather than
papered over with rollback the repository cannot guarantee either.

Contributing

 1. Fork it (<https://github.com/c2fo/synfs/fork>)
 2. Create your feature branch (`git checkout -b feature/fooBar`)
 3. Commit your changes (`git commit -am 'Add some fooBar'`)
 4. Push to the branch (`git push origin feature/fooBar`)
 5. Create a new Pull Request

License

Distributed under the MIT license. See `http://github.com/c2fo/synfs/License.md for more information.
*/
package synfs
