package s3

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/storage"
	"github.com/c2fo/synfs/utils"
)

// Scheme defines the storage type.
const Scheme = "s3"

// Client is the subset of the AWS S3 API the store uses. It is satisfied by
// *s3.Client and is what the transfer managers accept.
type Client interface {
	manager.DownloadAPIClient
	manager.UploadAPIClient
}

// Options holds s3-specific options. Currently only client and transfer
// options are used.
type Options struct {
	AccessKeyID                 string                `json:"accessKeyId,omitempty"`
	SecretAccessKey             string                `json:"secretAccessKey,omitempty"`
	SessionToken                string                `json:"sessionToken,omitempty"`
	Region                      string                `json:"region,omitempty"`
	RoleARN                     string                `json:"roleARN,omitempty"`
	Endpoint                    string                `json:"endpoint,omitempty"`
	ACL                         types.ObjectCannedACL `json:"acl,omitempty"`
	ForcePathStyle              bool                  `json:"forcePathStyle,omitempty"`
	DisableServerSideEncryption bool                  `json:"disableServerSideEncryption,omitempty"`
	Retry                       aws.Retryer
	DownloadPartitionSize       int64 // Partition size in bytes used for multipart download of large objects
	UploadPartitionSize         int64 // Partition size in bytes used for multipart upload of large objects
}

// Store moves file bytes between the local filesystem and AWS S3 buckets,
// including S3-compatible endpoints such as minio.
type Store struct {
	client  Client
	options Options
}

// NewStore initializer for Store. Accepts zero or more store options.
func NewStore(opts ...options.NewStoreOption[Store]) *Store {
	s := &Store{}
	options.ApplyStoreOptions(s, opts...)
	return s
}

// Scheme returns "s3", the scheme this store registers under.
func (s *Store) Scheme() string {
	return Scheme
}

// Upload copies the local file at localPath to key within the container
// bucket.
func (s *Store) Upload(ctx context.Context, localPath, container, key string) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	input := &s3.PutObjectInput{
		Bucket: utils.Ptr(container),
		Key:    utils.Ptr(key),
		Body:   f,
	}
	if !s.options.DisableServerSideEncryption {
		input.ServerSideEncryption = types.ServerSideEncryptionAes256
	}
	if s.options.ACL != "" {
		input.ACL = s.options.ACL
	}

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		if s.options.UploadPartitionSize > 0 {
			u.PartSize = s.options.UploadPartitionSize
		}
	})
	_, err = uploader.Upload(ctx, input)
	return err
}

// Download copies key within the container bucket to targetPath on the local
// filesystem.
func (s *Store) Download(ctx context.Context, container, key, targetPath string) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}

	f, err := os.Create(targetPath)
	if err != nil {
		return err
	}

	downloader := manager.NewDownloader(client, func(d *manager.Downloader) {
		if s.options.DownloadPartitionSize > 0 {
			d.PartSize = s.options.DownloadPartitionSize
		}
	})
	if _, err := downloader.Download(ctx, f, &s3.GetObjectInput{
		Bucket: utils.Ptr(container),
		Key:    utils.Ptr(key),
	}); err != nil {
		f.Close() //nolint:errcheck // the download error wins
		return err
	}
	return f.Close()
}

// getClient returns the underlying aws s3 client, creating it, if necessary
// See doc.go Overview for authentication resolution
func (s *Store) getClient() (Client, error) {
	if s.client == nil {
		var err error
		s.client, err = getClient(s.options)
		if err != nil {
			return nil, err
		}
	}
	return s.client, nil
}

// getClient setup S3 client
func getClient(opt Options) (Client, error) {
	// setup default config
	awsConfig, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	// return client instance
	return s3.NewFromConfig(awsConfig, func(opts *s3.Options) {
		if opt.Region != "" {
			opts.Region = opt.Region
		}

		// set path style for minio users
		opts.UsePathStyle = opt.ForcePathStyle

		// use specific endpoint, otherwise, will use aws "default endpoint resolver" based on region
		if opt.Endpoint != "" {
			opts.BaseEndpoint = aws.String(opt.Endpoint)
		}

		opts.Retryer = opt.Retry

		if opt.AccessKeyID != "" && opt.SecretAccessKey != "" {
			opts.Credentials = credentials.NewStaticCredentialsProvider(
				opt.AccessKeyID,
				opt.SecretAccessKey,
				opt.SessionToken,
			)
		} else if opt.RoleARN != "" {
			opts.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(sts.NewFromConfig(awsConfig), opt.RoleARN))
		}
	}), nil
}

func init() {
	// registers a default store
	storage.Register(Scheme, NewStore())
}
