package rest

import (
	"context"
	"crypto/md5" //nolint:gosec // the file service identifies content by MD5
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const multipartRequestType = "org.sagebionetworks.repo.model.file.MultipartUploadRequest"

type multipartRequest struct {
	ConcreteType      string `json:"concreteType"`
	FileName          string `json:"fileName"`
	FileSizeBytes     int64  `json:"fileSizeBytes"`
	ContentMD5Hex     string `json:"contentMD5Hex"`
	ContentType       string `json:"contentType"`
	PartSizeBytes     int64  `json:"partSizeBytes"`
	StorageLocationID int64  `json:"storageLocationId,omitempty"`
	GeneratePreview   bool   `json:"generatePreview"`
}

// multipartStatus tracks an upload across calls. PartsState is a string of
// 0/1 flags, one per part; resuming an interrupted upload skips the parts
// already marked 1.
type multipartStatus struct {
	UploadID           string `json:"uploadId"`
	State              string `json:"state"`
	PartsState         string `json:"partsState"`
	ResultFileHandleID string `json:"resultFileHandleId"`
}

type presignedBatchRequest struct {
	UploadID    string  `json:"uploadId"`
	PartNumbers []int64 `json:"partNumbers"`
}

type partPresignedURL struct {
	PartNumber         int64  `json:"partNumber"`
	UploadPresignedURL string `json:"uploadPresignedUrl"`
}

type presignedBatchResponse struct {
	PartPresignedURLs []partPresignedURL `json:"partPresignedUrls"`
}

type addPartResponse struct {
	AddPartState string `json:"addPartState"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// multipartUpload pushes the local file through the file service's multipart
// protocol: start an upload, stream each part to its presigned URL, confirm
// the part with its MD5, and complete. Parts go up sequentially.
func (c *Client) multipartUpload(ctx context.Context, localPath, fileName string, storageLocationID int64) (string, error) {
	md5Hex, size, err := fileDigest(localPath)
	if err != nil {
		return "", err
	}

	partSize := c.opts.PartSize
	numParts := (size + partSize - 1) / partSize
	if numParts == 0 {
		numParts = 1
	}

	status, err := c.startMultipart(ctx, multipartRequest{
		ConcreteType:      multipartRequestType,
		FileName:          fileName,
		FileSizeBytes:     size,
		ContentMD5Hex:     md5Hex,
		ContentType:       contentType(fileName),
		PartSizeBytes:     partSize,
		StorageLocationID: storageLocationID,
	})
	if err != nil {
		return "", err
	}
	if status.State == "COMPLETED" && status.ResultFileHandleID != "" {
		// the service deduplicates uploads by content MD5
		return status.ResultFileHandleID, nil
	}

	c.logger.Debug("multipart upload started",
		zap.String("uploadId", status.UploadID), zap.Int64("parts", numParts), zap.Int64("size", size))

	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	pending := pendingParts(status.PartsState, numParts)
	urls, err := c.presignParts(ctx, status.UploadID, pending)
	if err != nil {
		return "", err
	}

	for _, part := range pending {
		presigned, ok := urls[part]
		if !ok {
			return "", fmt.Errorf("no presigned URL for part %d of upload %s", part, status.UploadID)
		}
		if err := c.uploadPart(ctx, f, status.UploadID, part, partSize, size, presigned); err != nil {
			return "", err
		}
	}

	return c.completeMultipart(ctx, status.UploadID)
}

// pendingParts returns the 1-based part numbers still missing according to
// partsState, or every part when the state string is absent or malformed.
func pendingParts(partsState string, numParts int64) []int64 {
	var parts []int64
	for n := int64(1); n <= numParts; n++ {
		if int64(len(partsState)) == numParts && partsState[n-1] == '1' {
			continue
		}
		parts = append(parts, n)
	}
	return parts
}

func (c *Client) startMultipart(ctx context.Context, req multipartRequest) (*multipartStatus, error) {
	status := multipartStatus{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&status).
		SetError(&apiError{}).
		Post("/file/v1/file/multipart")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) presignParts(ctx context.Context, uploadID string, parts []int64) (map[int64]string, error) {
	urls := make(map[int64]string, len(parts))
	if len(parts) == 0 {
		return urls, nil
	}

	batch := presignedBatchResponse{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(presignedBatchRequest{UploadID: uploadID, PartNumbers: parts}).
		SetResult(&batch).
		SetError(&apiError{}).
		Post("/file/v1/file/multipart/" + uploadID + "/presigned/url/batch")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	for _, p := range batch.PartPresignedURLs {
		urls[p.PartNumber] = p.UploadPresignedURL
	}
	return urls, nil
}

// uploadPart sends one part to its presigned URL and confirms it with the
// part's MD5. The presigned PUT goes through the unauthenticated client.
func (c *Client) uploadPart(ctx context.Context, f *os.File, uploadID string, part, partSize, size int64, presigned string) error {
	offset := (part - 1) * partSize
	length := partSize
	if remaining := size - offset; remaining < length {
		length = remaining
	}
	if length < 0 {
		length = 0
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(io.NewSectionReader(f, offset, length), buf); err != nil {
		return err
	}

	resp, err := c.files.R().
		SetContext(ctx).
		SetBody(buf).
		Put(presigned)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("PUT part %d of upload %s: %s", part, uploadID, resp.Status())
	}

	sum := md5.Sum(buf) //nolint:gosec // the file service identifies content by MD5
	return c.addPart(ctx, uploadID, part, hex.EncodeToString(sum[:]))
}

func (c *Client) addPart(ctx context.Context, uploadID string, part int64, partMD5Hex string) error {
	result := addPartResponse{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiError{}).
		SetQueryParam("partMD5Hex", partMD5Hex).
		Put(fmt.Sprintf("/file/v1/file/multipart/%s/add/%d", uploadID, part))
	if err != nil {
		return err
	}
	if err := responseError(resp); err != nil {
		return err
	}
	if result.AddPartState == "ADD_FAILED" {
		return fmt.Errorf("adding part %d to upload %s: %s", part, uploadID, result.ErrorMessage)
	}
	return nil
}

func (c *Client) completeMultipart(ctx context.Context, uploadID string) (string, error) {
	status := multipartStatus{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&apiError{}).
		Put("/file/v1/file/multipart/" + uploadID + "/complete")
	if err != nil {
		return "", err
	}
	if err := responseError(resp); err != nil {
		return "", err
	}
	if status.ResultFileHandleID == "" {
		return "", fmt.Errorf("upload %s completed without a file handle", uploadID)
	}

	c.logger.Debug("multipart upload completed",
		zap.String("uploadId", uploadID), zap.String("fileHandleId", status.ResultFileHandleID))
	return status.ResultFileHandleID, nil
}
