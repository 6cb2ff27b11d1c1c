/*
Package upload consists of custom upload options

Currently, we have IncludeHidden option that can be used to upload dot-prefixed files,
which Session.Upload otherwise skips.

Usage

	import(
	    "github.com/c2fo/synfs/options/upload"
	)

	func UploadTree(ctx context.Context, session *synfs.Session) error {
	    _, err := session.Upload(ctx, "local/dir", "remote/dir", upload.WithIncludeHidden())
	    ...
	}
*/
package upload
