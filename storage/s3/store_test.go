package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/synfs/storage"
)

/**********************************
 ************TESTS*****************
 **********************************/

type putRecord struct {
	bucket string
	key    string
	body   []byte
	acl    types.ObjectCannedACL
	sse    types.ServerSideEncryption
}

// fakeAPI satisfies Client with an in-memory object map. GetObject honors
// Range requests the way S3 does, which the multipart downloader relies on.
type fakeAPI struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    []putRecord
	gets    int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{objects: make(map[string][]byte)}
}

func (f *fakeAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, putRecord{
		bucket: aws.ToString(in.Bucket),
		key:    aws.ToString(in.Key),
		body:   body,
		acl:    in.ACL,
		sse:    in.ServerSideEncryption,
	})
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++

	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}

	start, end := byteRange(in.Range, int64(len(data)))
	chunk := data[start : end+1]
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(chunk)),
		ContentLength: aws.Int64(int64(len(chunk))),
		ContentRange:  aws.String(fmt.Sprintf("bytes %d-%d/%d", start, end, len(data))),
	}, nil
}

func (f *fakeAPI) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

func (f *fakeAPI) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

func (f *fakeAPI) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

func (f *fakeAPI) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

// byteRange resolves an S3 Range header against an object of the given size.
func byteRange(spec *string, size int64) (start, end int64) {
	end = size - 1
	if spec == nil {
		return 0, end
	}
	parts := strings.SplitN(strings.TrimPrefix(aws.ToString(spec), "bytes="), "-", 2)
	start, _ = strconv.ParseInt(parts[0], 10, 64)
	if len(parts) == 2 && parts[1] != "" {
		if e, err := strconv.ParseInt(parts[1], 10, 64); err == nil && e < end {
			end = e
		}
	}
	return start, end
}

type s3StoreSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *s3StoreSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *s3StoreSuite) writeLocal(name, content string) string {
	p := filepath.Join(s.T().TempDir(), name)
	s.Require().NoError(os.WriteFile(p, []byte(content), 0o600))
	return p
}

func (s *s3StoreSuite) TestUploadStoresObject() {
	api := newFakeAPI()
	store := NewStore(WithClient(api))

	local := s.writeLocal("f.txt", "hello s3")
	s.Require().NoError(store.Upload(s.ctx, local, "bkt", "base/f.txt"))

	s.Require().Len(api.puts, 1)
	put := api.puts[0]
	s.Equal("bkt", put.bucket)
	s.Equal("base/f.txt", put.key)
	s.Equal("hello s3", string(put.body))
	s.Equal(types.ServerSideEncryptionAes256, put.sse, "encryption is on unless disabled")
	s.Empty(put.acl)
}

func (s *s3StoreSuite) TestUploadAppliesOptions() {
	api := newFakeAPI()
	store := NewStore(
		WithClient(api),
		WithOptions(Options{
			ACL:                         types.ObjectCannedACLBucketOwnerFullControl,
			DisableServerSideEncryption: true,
		}),
	)

	local := s.writeLocal("f.txt", "opted")
	s.Require().NoError(store.Upload(s.ctx, local, "bkt", "f.txt"))

	s.Require().Len(api.puts, 1)
	put := api.puts[0]
	s.Equal(types.ObjectCannedACLBucketOwnerFullControl, put.acl)
	s.Empty(put.sse)
}

func (s *s3StoreSuite) TestUploadMissingLocalFile() {
	api := newFakeAPI()
	store := NewStore(WithClient(api))

	err := store.Upload(s.ctx, filepath.Join(s.T().TempDir(), "absent.txt"), "bkt", "f.txt")
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
	s.Empty(api.puts)
}

func (s *s3StoreSuite) TestDownloadWritesFile() {
	api := newFakeAPI()
	api.objects["bkt/data/f.txt"] = []byte("hello s3 download")
	store := NewStore(WithClient(api))

	target := filepath.Join(s.T().TempDir(), "f.txt")
	s.Require().NoError(store.Download(s.ctx, "bkt", "data/f.txt", target))

	got, err := os.ReadFile(target)
	s.Require().NoError(err)
	s.Equal("hello s3 download", string(got))
	s.Equal(1, api.gets, "small objects fit a single ranged request")
}

func (s *s3StoreSuite) TestDownloadChunksLargeObjects() {
	api := newFakeAPI()
	api.objects["bkt/big.bin"] = []byte("0123456789A")
	store := NewStore(
		WithClient(api),
		WithOptions(Options{DownloadPartitionSize: 4}),
	)

	target := filepath.Join(s.T().TempDir(), "big.bin")
	s.Require().NoError(store.Download(s.ctx, "bkt", "big.bin", target))

	got, err := os.ReadFile(target)
	s.Require().NoError(err)
	s.Equal("0123456789A", string(got))
	s.Equal(3, api.gets, "11 bytes over 4-byte partitions takes 3 requests")
}

func (s *s3StoreSuite) TestDownloadMissingObject() {
	api := newFakeAPI()
	store := NewStore(WithClient(api))

	err := store.Download(s.ctx, "bkt", "nope.txt", filepath.Join(s.T().TempDir(), "nope.txt"))
	s.Require().Error(err)
	var notFound *types.NoSuchKey
	s.ErrorAs(err, &notFound)
}

func (s *s3StoreSuite) TestSchemeRegistered() {
	store, err := storage.Lookup(Scheme)
	s.Require().NoError(err)
	s.IsType((*Store)(nil), store)
	s.Equal(Scheme, store.Scheme())
}

func TestS3Store(t *testing.T) {
	suite.Run(t, new(s3StoreSuite))
}
