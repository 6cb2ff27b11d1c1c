package rest

import (
	"context"
	"crypto/md5" //nolint:gosec // the file service identifies content by MD5
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/c2fo/synfs/storage"
)

// Upload destination and file handle concrete types, as the file service
// names them.
const (
	destinationS3         = "org.sagebionetworks.repo.model.file.S3UploadDestination"
	destinationExternalS3 = "org.sagebionetworks.repo.model.file.ExternalS3UploadDestination"
	destinationExternalGS = "org.sagebionetworks.repo.model.file.ExternalGoogleCloudUploadDestination"
	destinationExternal   = "org.sagebionetworks.repo.model.file.ExternalUploadDestination"

	handleS3       = "org.sagebionetworks.repo.model.file.S3FileHandle"
	handleGS       = "org.sagebionetworks.repo.model.file.GoogleCloudFileHandle"
	handleExternal = "org.sagebionetworks.repo.model.file.ExternalFileHandle"
)

// uploadDestination describes where file bytes for a given container must be
// written. Native destinations take multipart uploads through the file
// service itself; external ones name a bucket or URL this client writes to
// directly before registering a file handle.
type uploadDestination struct {
	ConcreteType      string `json:"concreteType"`
	StorageLocationID int64  `json:"storageLocationId"`
	Bucket            string `json:"bucket,omitempty"`
	BaseKey           string `json:"baseKey,omitempty"`
	URL               string `json:"url,omitempty"`
}

// fileHandle is the wire shape of a file handle, shared by the native and
// external registration endpoints.
type fileHandle struct {
	ID                string `json:"id,omitempty"`
	ConcreteType      string `json:"concreteType"`
	FileName          string `json:"fileName"`
	ContentMD5        string `json:"contentMd5,omitempty"`
	ContentSize       int64  `json:"contentSize,omitempty"`
	ContentType       string `json:"contentType,omitempty"`
	BucketName        string `json:"bucketName,omitempty"`
	Key               string `json:"key,omitempty"`
	ExternalURL       string `json:"externalURL,omitempty"`
	StorageLocationID int64  `json:"storageLocationId,omitempty"`
}

// uploadFile stores the local file according to the upload destination of
// parentID and returns the resulting file handle ID.
func (c *Client) uploadFile(ctx context.Context, localPath, fileName, parentID string) (string, error) {
	dest, err := c.uploadDestination(ctx, parentID)
	if err != nil {
		return "", err
	}

	switch dest.ConcreteType {
	case destinationS3, "":
		return c.multipartUpload(ctx, localPath, fileName, dest.StorageLocationID)
	case destinationExternalS3:
		return c.bucketUpload(ctx, localPath, fileName, dest, "s3", handleS3, "/file/v1/externalFileHandle/s3")
	case destinationExternalGS:
		return c.bucketUpload(ctx, localPath, fileName, dest, "gs", handleGS, "/file/v1/externalFileHandle/googleCloud")
	case destinationExternal:
		return c.urlUpload(ctx, localPath, fileName, dest)
	default:
		return "", fmt.Errorf("unsupported upload destination %q", dest.ConcreteType)
	}
}

func (c *Client) uploadDestination(ctx context.Context, parentID string) (*uploadDestination, error) {
	dest := uploadDestination{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&dest).
		SetError(&apiError{}).
		Get("/file/v1/entity/" + parentID + "/uploadDestination")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &dest, nil
}

// bucketUpload writes the file into an external bucket through the store
// registered for scheme, then registers a handle pointing at the object. Keys
// get a random component so concurrent uploads of the same name never collide
// in the bucket.
func (c *Client) bucketUpload(ctx context.Context, localPath, fileName string, dest *uploadDestination, scheme, handleType, handlePath string) (string, error) {
	store, err := storage.Lookup(scheme)
	if err != nil {
		return "", err
	}

	key := path.Join(dest.BaseKey, uuid.NewString(), fileName)
	if err := store.Upload(ctx, localPath, dest.Bucket, key); err != nil {
		return "", err
	}

	md5Hex, size, err := fileDigest(localPath)
	if err != nil {
		return "", err
	}

	c.logger.Debug("uploaded to external bucket",
		zap.String("scheme", scheme), zap.String("bucket", dest.Bucket), zap.String("key", key))

	return c.registerFileHandle(ctx, handlePath, fileHandle{
		ConcreteType:      handleType,
		FileName:          fileName,
		ContentMD5:        md5Hex,
		ContentSize:       size,
		ContentType:       contentType(fileName),
		BucketName:        dest.Bucket,
		Key:               key,
		StorageLocationID: dest.StorageLocationID,
	})
}

// urlUpload writes the file to a URL-addressed external location, such as an
// SFTP storage location, then registers a plain external handle for it.
func (c *Client) urlUpload(ctx context.Context, localPath, fileName string, dest *uploadDestination) (string, error) {
	u, err := url.Parse(dest.URL)
	if err != nil {
		return "", fmt.Errorf("upload destination URL %q: %w", dest.URL, err)
	}

	store, err := storage.Lookup(u.Scheme)
	if err != nil {
		return "", err
	}

	key := path.Join(strings.TrimPrefix(u.Path, "/"), fileName)
	if err := store.Upload(ctx, localPath, u.Host, key); err != nil {
		return "", err
	}

	md5Hex, size, err := fileDigest(localPath)
	if err != nil {
		return "", err
	}

	c.logger.Debug("uploaded to external URL",
		zap.String("scheme", u.Scheme), zap.String("host", u.Host), zap.String("key", key))

	return c.registerFileHandle(ctx, "/file/v1/externalFileHandle", fileHandle{
		ConcreteType:      handleExternal,
		FileName:          fileName,
		ContentMD5:        md5Hex,
		ContentSize:       size,
		ContentType:       contentType(fileName),
		ExternalURL:       strings.TrimSuffix(dest.URL, "/") + "/" + url.PathEscape(fileName),
		StorageLocationID: dest.StorageLocationID,
	})
}

func (c *Client) registerFileHandle(ctx context.Context, endpoint string, handle fileHandle) (string, error) {
	registered := fileHandle{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(handle).
		SetResult(&registered).
		SetError(&apiError{}).
		Post(endpoint)
	if err != nil {
		return "", err
	}
	if err := responseError(resp); err != nil {
		return "", err
	}
	return registered.ID, nil
}

// fetchToFile materializes rawURL as the local file target. HTTP URLs are
// followed directly with the unauthenticated client; any other scheme is
// dispatched to its registered storage.Store.
func (c *Client) fetchToFile(ctx context.Context, rawURL, target string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("download URL %q: %w", rawURL, err)
	}

	switch u.Scheme {
	case "http", "https":
		resp, err := c.files.R().
			SetContext(ctx).
			SetOutput(target).
			Get(rawURL)
		if err != nil {
			return err
		}
		if !resp.IsSuccess() {
			return fmt.Errorf("GET %s: %s", u.Host, resp.Status())
		}
		return nil
	default:
		store, err := storage.Lookup(u.Scheme)
		if err != nil {
			return err
		}
		return store.Download(ctx, u.Host, strings.TrimPrefix(u.Path, "/"), target)
	}
}

// fileDigest returns the hex MD5 and size of the file at localPath. The file
// service uses MD5 both to validate uploads and to deduplicate content.
func fileDigest(localPath string) (string, int64, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", 0, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	h := md5.New() //nolint:gosec // the file service identifies content by MD5
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}

func contentType(fileName string) string {
	if t := mime.TypeByExtension(filepath.Ext(fileName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
