package s3

/*
Package s3 registers an AWS S3 transfer store using AWS SDK for Go v2. The
rest backend delegates to this store for files that live in user-owned S3
storage locations rather than in the repository's native store.

# Usage

Rely on github.com/c2fo/synfs/storage

	import (
	    "github.com/c2fo/synfs/storage"
	    _ "github.com/c2fo/synfs/storage/s3"
	)

	func UseStore() error {
	    store, err := storage.Lookup(s3.Scheme)
	    ...
	}

Or call directly:

	import "github.com/c2fo/synfs/storage/s3"

	func DoSomething() {
	    store := s3.NewStore(
	        s3.WithOptions(
	            s3.Options{
	                Region:         "us-west-2",
	                RoleARN:        "arn:aws:iam::123456789012:role/MyRole",
	                ForcePathStyle: false,
	            },
	        ),
	    )
	    ...
	}

A specific client, for instance a fake for tests, can be passed in with
WithClient:

	store := s3.NewStore(s3.WithClient(fakeClient))

# Authentication

Authentication, by default, occurs automatically on the first transfer. The
default AWS credential chain applies: static credentials from Options,
environment variables (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
AWS_SESSION_TOKEN), the shared credentials file, then remote providers such
as EC2 or ECS IAM roles. When Options.RoleARN is set, the resolved identity
assumes that role via STS before any transfer.

# Object ACL

A canned ACL can be passed in as an Option and is applied to every upload.
See https://docs.aws.amazon.com/AmazonS3/latest/dev/acl-overview.html#canned-acl
for values. Uploads use AES256 server-side encryption unless
DisableServerSideEncryption is set.
*/
