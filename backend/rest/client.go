package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/c2fo/synfs"
	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/utils"
)

// ErrMissingToken is returned by NewClient when no personal access token is
// available from options or the SYNAPSE_AUTH_TOKEN environment variable.
var ErrMissingToken = errors.New("rest: an auth token is required; set one with WithAuthToken or SYNAPSE_AUTH_TOKEN")

// Client implements synfs.Client against the repository's REST API. Entity
// operations go through the /repo/v1 service and file-handle operations
// through /file/v1; file bytes travel via presigned URLs or, for external
// storage locations, via a registered storage.Store.
type Client struct {
	opts   Options
	api    *resty.Client
	files  *resty.Client
	logger *zap.Logger
}

var _ synfs.Client = (*Client)(nil)

// NewClient returns a Client configured by opts. A personal access token is
// required; everything else has a workable default.
func NewClient(opts ...options.NewClientOption[Client]) (*Client, error) {
	c := &Client{
		opts:   NewOptions(),
		logger: zap.NewNop(),
	}
	options.ApplyClientOptions(c, opts...)

	if c.opts.AuthToken == "" {
		c.opts.AuthToken = os.Getenv("SYNAPSE_AUTH_TOKEN")
	}
	if c.opts.AuthToken == "" {
		return nil, ErrMissingToken
	}

	retryable := func(resp *resty.Response, err error) bool {
		return err == nil &&
			(resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError)
	}

	c.api = resty.New().
		SetBaseURL(utils.RemoveTrailingSlash(c.opts.Endpoint)).
		SetAuthToken(c.opts.AuthToken).
		SetRetryCount(c.opts.RetryCount).
		SetTimeout(c.opts.Timeout).
		AddRetryCondition(retryable)

	// presigned and external URLs carry their own authorization; a bearer
	// header would invalidate their signatures
	c.files = resty.New().
		SetRetryCount(c.opts.RetryCount).
		SetTimeout(c.opts.Timeout).
		AddRetryCondition(retryable)

	return c, nil
}

// entity is the wire shape of a repository entity. Only the fields this layer
// reads or writes are declared; updates that must round-trip the full record
// go through updateEntity instead.
type entity struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name,omitempty"`
	ParentID         string `json:"parentId,omitempty"`
	ConcreteType     string `json:"concreteType,omitempty"`
	ETag             string `json:"etag,omitempty"`
	DataFileHandleID string `json:"dataFileHandleId,omitempty"`
}

func (e *entity) toEntity() *synfs.Entity {
	return &synfs.Entity{
		ID:       e.ID,
		Name:     e.Name,
		ParentID: e.ParentID,
		Type:     synfs.EntityType(e.ConcreteType),
	}
}

// apiError is the error body the services return alongside non-2xx statuses.
type apiError struct {
	Reason string `json:"reason"`
}

// responseError maps a non-2xx response to an error, folding the service's
// reason string in and translating the status codes that have canonical
// synfs error kinds.
func responseError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	reason := http.StatusText(resp.StatusCode())
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Reason != "" {
		reason = apiErr.Reason
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", reason, synfs.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", reason, synfs.ErrAlreadyExists)
	}
	return fmt.Errorf("%s %s: %s", resp.Request.Method, resp.Request.URL, reason)
}

type entityLookupRequest struct {
	ParentID   string `json:"parentId"`
	EntityName string `json:"entityName"`
}

// FindChildID looks up the child of parentID named name via the dedicated
// child-lookup endpoint. The service answers absence with 404, which this
// layer reports as ("", nil).
func (c *Client) FindChildID(ctx context.Context, parentID, name string) (string, error) {
	var result struct {
		ID string `json:"id"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(entityLookupRequest{ParentID: parentID, EntityName: name}).
		SetResult(&result).
		SetError(&apiError{}).
		Post("/repo/v1/entity/child")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return "", nil
	}
	if err := responseError(resp); err != nil {
		return "", err
	}
	return result.ID, nil
}

// GetEntity returns the entity with the given ID.
func (c *Client) GetEntity(ctx context.Context, id string) (*synfs.Entity, error) {
	e, err := c.getEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.toEntity(), nil
}

func (c *Client) getEntity(ctx context.Context, id string) (*entity, error) {
	e := entity{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&e).
		SetError(&apiError{}).
		Get("/repo/v1/entity/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateFile uploads the local file at localPath and binds it as a file
// entity named name under parentID. An existing file entity of that name is
// updated in place to point at the new upload; an existing container of that
// name fails with ErrAlreadyExists.
func (c *Client) CreateFile(ctx context.Context, localPath, name, parentID string) (*synfs.Entity, error) {
	existingID, err := c.FindChildID(ctx, parentID, name)
	if err != nil {
		return nil, err
	}
	if existingID != "" {
		existing, err := c.getEntity(ctx, existingID)
		if err != nil {
			return nil, err
		}
		if existing.ConcreteType != string(synfs.TypeFile) {
			return nil, fmt.Errorf("%q: %w", name, synfs.ErrAlreadyExists)
		}
	}

	handleID, err := c.uploadFile(ctx, localPath, name, parentID)
	if err != nil {
		return nil, err
	}

	if existingID != "" {
		updated, err := c.updateEntity(ctx, existingID, func(e map[string]any) {
			e["dataFileHandleId"] = handleID
		})
		if err != nil {
			return nil, err
		}
		c.logger.Debug("replaced file entity",
			zap.String("id", updated.ID), zap.String("fileHandleId", handleID))
		return updated.toEntity(), nil
	}

	created := entity{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(entity{
			Name:             name,
			ParentID:         parentID,
			ConcreteType:     string(synfs.TypeFile),
			DataFileHandleID: handleID,
		}).
		SetResult(&created).
		SetError(&apiError{}).
		Post("/repo/v1/entity")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	c.logger.Debug("created file entity",
		zap.String("id", created.ID), zap.String("name", name), zap.String("parentId", parentID))
	return created.toEntity(), nil
}

// CreateFolder creates a folder named name under parentID. The service
// answers a sibling name conflict with 409, surfaced as ErrAlreadyExists.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (*synfs.Entity, error) {
	created := entity{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(entity{
			Name:         name,
			ParentID:     parentID,
			ConcreteType: string(synfs.TypeFolder),
		}).
		SetResult(&created).
		SetError(&apiError{}).
		Post("/repo/v1/entity")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	c.logger.Debug("created folder entity",
		zap.String("id", created.ID), zap.String("name", name), zap.String("parentId", parentID))
	return created.toEntity(), nil
}

// FetchFile downloads the content of the file entity id into targetDir under
// the entity's name and returns the path written. The download URL is asked
// for with redirect=false and followed with the unauthenticated client, or
// handed to a storage.Store when it points at an external location.
func (c *Client) FetchFile(ctx context.Context, id, targetDir string) (string, error) {
	e, err := c.getEntity(ctx, id)
	if err != nil {
		return "", err
	}

	resp, err := c.api.R().
		SetContext(ctx).
		SetError(&apiError{}).
		SetQueryParam("redirect", "false").
		Get("/repo/v1/entity/" + id + "/file")
	if err != nil {
		return "", err
	}
	if err := responseError(resp); err != nil {
		return "", err
	}

	fileURL := strings.TrimSpace(resp.String())
	target := filepath.Join(targetDir, e.Name)
	if err := c.fetchToFile(ctx, fileURL, target); err != nil {
		return "", err
	}
	return target, nil
}

type childrenRequest struct {
	ParentID      string   `json:"parentId"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
	IncludeTypes  []string `json:"includeTypes"`
}

type entityHeader struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type childrenResponse struct {
	Page          []entityHeader `json:"page"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

// ListChildren returns the immediate children of parentID in store order,
// following pagination tokens until the listing is exhausted.
func (c *Client) ListChildren(ctx context.Context, parentID string) ([]synfs.Entity, error) {
	var children []synfs.Entity
	token := ""
	for {
		page := childrenResponse{}
		resp, err := c.api.R().
			SetContext(ctx).
			SetBody(childrenRequest{
				ParentID:      parentID,
				NextPageToken: token,
				IncludeTypes:  []string{"file", "folder", "project"},
			}).
			SetResult(&page).
			SetError(&apiError{}).
			Post("/repo/v1/entity/children")
		if err != nil {
			return nil, err
		}
		if err := responseError(resp); err != nil {
			return nil, err
		}

		for _, header := range page.Page {
			children = append(children, synfs.Entity{
				ID:       header.ID,
				Name:     header.Name,
				ParentID: parentID,
				Type:     synfs.EntityType(header.Type),
			})
		}

		if page.NextPageToken == "" {
			return children, nil
		}
		token = page.NextPageToken
	}
}

// DeleteEntity deletes the entity id. Deleting a container deletes its whole
// subtree server side.
func (c *Client) DeleteEntity(ctx context.Context, id string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete("/repo/v1/entity/" + id)
	if err != nil {
		return err
	}
	if err := responseError(resp); err != nil {
		return err
	}

	c.logger.Debug("deleted entity", zap.String("id", id))
	return nil
}

// MoveEntity reparents the entity id under newParentID, keeping its name.
func (c *Client) MoveEntity(ctx context.Context, id, newParentID string) error {
	_, err := c.updateEntity(ctx, id, func(e map[string]any) {
		e["parentId"] = newParentID
	})
	if err != nil {
		return err
	}

	c.logger.Debug("moved entity", zap.String("id", id), zap.String("parentId", newParentID))
	return nil
}

// RenameEntity gives the entity id the name newName.
func (c *Client) RenameEntity(ctx context.Context, id, newName string) error {
	_, err := c.updateEntity(ctx, id, func(e map[string]any) {
		e["name"] = newName
	})
	if err != nil {
		return err
	}

	c.logger.Debug("renamed entity", zap.String("id", id), zap.String("name", newName))
	return nil
}

// updateEntity round-trips the full entity record: reads it, applies mutate,
// and writes it back. The record carries an etag the service uses for
// optimistic concurrency, so updates always start from a fresh read.
func (c *Client) updateEntity(ctx context.Context, id string, mutate func(map[string]any)) (*entity, error) {
	raw := map[string]any{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&raw).
		SetError(&apiError{}).
		Get("/repo/v1/entity/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	mutate(raw)

	updated := entity{}
	resp, err = c.api.R().
		SetContext(ctx).
		SetBody(raw).
		SetResult(&updated).
		SetError(&apiError{}).
		Put("/repo/v1/entity/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CopySubtree copies the entity srcID into dstParentID, preserving names.
// Files are copied by duplicating their file handle, so no bytes move;
// containers are recreated and their children copied recursively. A project
// source is copied as a folder, since projects cannot nest.
func (c *Client) CopySubtree(ctx context.Context, srcID, dstParentID string) error {
	src, err := c.getEntity(ctx, srcID)
	if err != nil {
		return err
	}

	switch src.ConcreteType {
	case string(synfs.TypeFile):
		return c.copyFile(ctx, src, dstParentID)
	case string(synfs.TypeFolder), string(synfs.TypeProject):
		return c.copyContainer(ctx, src, dstParentID)
	default:
		return fmt.Errorf("%q: cannot copy entity of type %q", srcID, src.ConcreteType)
	}
}

func (c *Client) copyFile(ctx context.Context, src *entity, dstParentID string) error {
	handleID, err := c.copyFileHandle(ctx, src.DataFileHandleID, src.ID)
	if err != nil {
		return err
	}

	created := entity{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(entity{
			Name:             src.Name,
			ParentID:         dstParentID,
			ConcreteType:     string(synfs.TypeFile),
			DataFileHandleID: handleID,
		}).
		SetResult(&created).
		SetError(&apiError{}).
		Post("/repo/v1/entity")
	if err != nil {
		return err
	}
	return responseError(resp)
}

func (c *Client) copyContainer(ctx context.Context, src *entity, dstParentID string) error {
	created := entity{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(entity{
			Name:         src.Name,
			ParentID:     dstParentID,
			ConcreteType: string(synfs.TypeFolder),
		}).
		SetResult(&created).
		SetError(&apiError{}).
		Post("/repo/v1/entity")
	if err != nil {
		return err
	}
	if err := responseError(resp); err != nil {
		return err
	}

	children, err := c.ListChildren(ctx, src.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := c.CopySubtree(ctx, child.ID, created.ID); err != nil {
			return err
		}
	}
	return nil
}

type fileHandleCopyRequest struct {
	CopyRequests []fileHandleCopyItem `json:"copyRequests"`
}

type fileHandleCopyItem struct {
	OriginalFile fileHandleAssociation `json:"originalFile"`
}

type fileHandleAssociation struct {
	FileHandleID        string `json:"fileHandleId"`
	AssociateObjectID   string `json:"associateObjectId"`
	AssociateObjectType string `json:"associateObjectType"`
}

type fileHandleCopyResponse struct {
	CopyResults []fileHandleCopyResult `json:"copyResults"`
}

type fileHandleCopyResult struct {
	OriginalFileHandleID string      `json:"originalFileHandleId"`
	FailureCode          string      `json:"failureCode,omitempty"`
	NewFileHandle        *fileHandle `json:"newFileHandle,omitempty"`
}

// copyFileHandle duplicates a file handle through the batch copy endpoint and
// returns the new handle's ID. entityID ties the request to the entity the
// handle is associated with, which the service requires for authorization.
func (c *Client) copyFileHandle(ctx context.Context, handleID, entityID string) (string, error) {
	result := fileHandleCopyResponse{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(fileHandleCopyRequest{
			CopyRequests: []fileHandleCopyItem{{
				OriginalFile: fileHandleAssociation{
					FileHandleID:        handleID,
					AssociateObjectID:   entityID,
					AssociateObjectType: "FileEntity",
				},
			}},
		}).
		SetResult(&result).
		SetError(&apiError{}).
		Post("/file/v1/filehandles/copy")
	if err != nil {
		return "", err
	}
	if err := responseError(resp); err != nil {
		return "", err
	}

	if len(result.CopyResults) == 0 {
		return "", fmt.Errorf("file handle copy of %q returned no results", handleID)
	}
	outcome := result.CopyResults[0]
	if outcome.FailureCode != "" {
		return "", fmt.Errorf("file handle copy of %q failed: %s", handleID, outcome.FailureCode)
	}
	if outcome.NewFileHandle == nil {
		return "", fmt.Errorf("file handle copy of %q returned no handle", handleID)
	}
	return outcome.NewFileHandle.ID, nil
}

// UserProfile identifies the authenticated principal.
type UserProfile struct {
	OwnerID  string `json:"ownerId"`
	UserName string `json:"userName"`
}

// Profile returns the profile of the principal the auth token belongs to.
// Useful as a cheap credential check.
func (c *Client) Profile(ctx context.Context) (*UserProfile, error) {
	profile := UserProfile{}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&profile).
		SetError(&apiError{}).
		Get("/repo/v1/userProfile")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &profile, nil
}
