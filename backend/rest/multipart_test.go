package rest

import (
	"context"
	"crypto/md5" //nolint:gosec // matching the checksums the protocol uses
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

/**********************************
 ************TESTS*****************
 **********************************/

type multipartSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *multipartSuite) SetupTest() {
	s.ctx = context.Background()
}

func md5Hex(b []byte) string {
	sum := md5.Sum(b) //nolint:gosec // matching the checksums the protocol uses
	return hex.EncodeToString(sum[:])
}

// startFixture builds a client with the multipart handlers installed and the
// given part size.
func (s *multipartSuite) startFixture(partSize int64) (*Client, *multipartFixture) {
	mux := http.NewServeMux()
	fixture := newMultipartFixture(&s.Suite, mux)

	server := httptest.NewServer(mux)
	s.T().Cleanup(server.Close)
	fixture.baseURL = server.URL

	client, err := NewClient(
		WithEndpoint(server.URL),
		WithAuthToken("test-token"),
		WithRetryCount(0),
		WithPartSize(partSize),
	)
	s.Require().NoError(err)
	return client, fixture
}

func (s *multipartSuite) writeLocal(content string) string {
	path := filepath.Join(s.T().TempDir(), "data.bin")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0600))
	return path
}

func (s *multipartSuite) TestUploadSequence() {
	client, fixture := s.startFixture(4)
	local := s.writeLocal("abcdefghij")

	handleID, err := client.multipartUpload(s.ctx, local, "data.bin", 1)
	s.Require().NoError(err)
	s.Equal("handle-123", handleID)

	// the create request describes the whole file
	s.Equal(multipartRequestType, fixture.created.ConcreteType)
	s.Equal("data.bin", fixture.created.FileName)
	s.Equal(int64(10), fixture.created.FileSizeBytes)
	s.Equal(int64(4), fixture.created.PartSizeBytes)
	s.Equal(int64(1), fixture.created.StorageLocationID)
	s.Equal(md5Hex([]byte("abcdefghij")), fixture.created.ContentMD5Hex)

	// parts carry the right slices and confirm with their own MD5s
	s.Equal("abcd", string(fixture.parts[1]))
	s.Equal("efgh", string(fixture.parts[2]))
	s.Equal("ij", string(fixture.parts[3]), "the last part is short")
	s.Equal(md5Hex([]byte("abcd")), fixture.partMD5s[1])
	s.Equal(md5Hex([]byte("efgh")), fixture.partMD5s[2])
	s.Equal(md5Hex([]byte("ij")), fixture.partMD5s[3])

	s.Equal([]string{
		"create",
		"presign",
		"put 1", "add 1",
		"put 2", "add 2",
		"put 3", "add 3",
		"complete",
	}, fixture.calls, "parts go up sequentially, each confirmed before the next")
}

func (s *multipartSuite) TestDeduplicatedUploadShortCircuits() {
	client, fixture := s.startFixture(4)
	fixture.status = multipartStatus{
		UploadID:           "upload-1",
		State:              "COMPLETED",
		ResultFileHandleID: "dedup-handle",
	}
	local := s.writeLocal("abcdefghij")

	handleID, err := client.multipartUpload(s.ctx, local, "data.bin", 1)
	s.Require().NoError(err)
	s.Equal("dedup-handle", handleID)
	s.Equal([]string{"create"}, fixture.calls, "no parts move for deduplicated content")
}

func (s *multipartSuite) TestResumeSkipsUploadedParts() {
	client, fixture := s.startFixture(4)
	fixture.status = multipartStatus{
		UploadID:   "upload-1",
		State:      "UPLOADING",
		PartsState: "10",
	}
	local := s.writeLocal("abcdef")

	handleID, err := client.multipartUpload(s.ctx, local, "data.bin", 1)
	s.Require().NoError(err)
	s.Equal("handle-123", handleID)

	s.NotContains(fixture.calls, "put 1", "part 1 is already on the server")
	s.Equal("ef", string(fixture.parts[2]))
	s.Equal([]string{"create", "presign", "put 2", "add 2", "complete"}, fixture.calls)
}

func (s *multipartSuite) TestEmptyFileUploadsOnePart() {
	client, fixture := s.startFixture(4)
	local := s.writeLocal("")

	handleID, err := client.multipartUpload(s.ctx, local, "data.bin", 1)
	s.Require().NoError(err)
	s.Equal("handle-123", handleID)
	s.Equal(int64(0), fixture.created.FileSizeBytes)
	s.Empty(fixture.parts[1])
	s.Contains(fixture.calls, "put 1")
}

func (s *multipartSuite) TestAddPartFailure() {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /file/v1/file/multipart", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, multipartStatus{UploadID: "upload-1", State: "UPLOADING"})
	})
	server := httptest.NewServer(mux)
	s.T().Cleanup(server.Close)

	mux.HandleFunc("POST /file/v1/file/multipart/upload-1/presigned/url/batch", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, presignedBatchResponse{
			PartPresignedURLs: []partPresignedURL{{PartNumber: 1, UploadPresignedURL: server.URL + "/upload-part"}},
		})
	})
	mux.HandleFunc("PUT /upload-part", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /file/v1/file/multipart/upload-1/add/1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, addPartResponse{AddPartState: "ADD_FAILED", ErrorMessage: "md5 mismatch"})
	})

	client, err := NewClient(WithEndpoint(server.URL), WithAuthToken("test-token"), WithRetryCount(0))
	s.Require().NoError(err)

	_, err = client.multipartUpload(s.ctx, s.writeLocal("abc"), "data.bin", 1)
	s.Require().Error(err)
	s.Contains(err.Error(), "md5 mismatch")
}

func (s *multipartSuite) TestCompleteWithoutHandleFails() {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /file/v1/file/multipart", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, multipartStatus{UploadID: "upload-1", State: "UPLOADING"})
	})
	server := httptest.NewServer(mux)
	s.T().Cleanup(server.Close)

	mux.HandleFunc("POST /file/v1/file/multipart/upload-1/presigned/url/batch", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, presignedBatchResponse{
			PartPresignedURLs: []partPresignedURL{{PartNumber: 1, UploadPresignedURL: server.URL + "/upload-part"}},
		})
	})
	mux.HandleFunc("PUT /upload-part", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /file/v1/file/multipart/upload-1/add/1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, addPartResponse{AddPartState: "ADD_SUCCESS"})
	})
	mux.HandleFunc("PUT /file/v1/file/multipart/upload-1/complete", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, multipartStatus{UploadID: "upload-1", State: "UPLOADING"})
	})

	client, err := NewClient(WithEndpoint(server.URL), WithAuthToken("test-token"), WithRetryCount(0))
	s.Require().NoError(err)

	_, err = client.multipartUpload(s.ctx, s.writeLocal("abc"), "data.bin", 1)
	s.Require().Error(err)
	s.Contains(err.Error(), "without a file handle")
}

func (s *multipartSuite) TestPendingParts() {
	tests := []struct {
		partsState string
		numParts   int64
		expected   []int64
		message    string
	}{
		{
			partsState: "",
			numParts:   3,
			expected:   []int64{1, 2, 3},
			message:    "no state means every part is pending",
		},
		{
			partsState: "101",
			numParts:   3,
			expected:   []int64{2},
			message:    "uploaded parts are skipped",
		},
		{
			partsState: "11",
			numParts:   3,
			expected:   []int64{1, 2, 3},
			message:    "a state of the wrong length is ignored",
		},
		{
			partsState: "111",
			numParts:   3,
			expected:   nil,
			message:    "nothing pending when every part is up",
		},
	}

	for _, test := range tests {
		s.Run(test.message, func() {
			s.Equal(test.expected, pendingParts(test.partsState, test.numParts))
		})
	}
}

func TestMultipart(t *testing.T) {
	suite.Run(t, new(multipartSuite))
}
