package synfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/options/upload"
	"github.com/c2fo/synfs/utils"
)

// stagingPrefix marks transient folders created by Copy while the copied
// subtree is relocated to its destination.
const stagingPrefix = ".synfs-cp-"

// Session binds a Client to a root entity (normally a project) and exposes
// path-based operations relative to that root. Paths are slash-separated and
// relative; a leading slash is ignored. A Session is safe to copy via WithRoot
// and is not mutated after construction.
//
// Every operation is a sequence of blocking remote calls. The Session adds no
// locking of its own; concurrent operations against the same tree are governed
// by the repository's name-uniqueness guarantee.
type Session struct {
	client Client
	root   string
	logger *zap.Logger
}

// New returns a Session rooted at projectID.
func New(client Client, projectID string, opts ...options.NewSessionOption[Session]) *Session {
	s := &Session{
		client: client,
		root:   projectID,
		logger: zap.NewNop(),
	}

	options.ApplySessionOptions(s, opts...)

	return s
}

// Client returns the underlying repository client.
func (s *Session) Client() Client {
	return s.client
}

// Root returns the ID of the entity paths are resolved against.
func (s *Session) Root() string {
	return s.root
}

// WithRoot returns a Session identical to s but rooted at parentID, letting
// callers address paths relative to any folder rather than the project root.
func (s *Session) WithRoot(parentID string) *Session {
	return &Session{
		client: s.client,
		root:   parentID,
		logger: s.logger,
	}
}

// Close releases the underlying client when it holds closable resources, such
// as open network connections. Sessions sharing a client via WithRoot share
// its connection state; close only once.
func (s *Session) Close() error {
	if closer, ok := s.client.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ResolveID maps a relative path to the ID of the entity it names. An empty
// path or "/" resolves to the session root itself. A path with any missing
// segment fails with ErrNotFound.
func (s *Session) ResolveID(ctx context.Context, path string) (string, error) {
	id, err := s.resolve(ctx, path)
	if err != nil {
		return "", utils.WrapResolveError(err)
	}
	if id == "" {
		return "", utils.WrapResolveError(fmt.Errorf("%q: %w", path, ErrNotFound))
	}
	return id, nil
}

// resolve walks path segment by segment from the session root, carrying the
// current parent ID. A path that does not resolve yields ("", nil); sibling
// names are unique, so each per-segment lookup is unambiguous.
func (s *Session) resolve(ctx context.Context, path string) (string, error) {
	current := s.root
	for _, segment := range utils.SplitPath(path) {
		id, err := s.client.FindChildID(ctx, current, segment)
		if err != nil {
			return "", err
		}
		if id == "" {
			return "", nil
		}
		current = id
	}
	return current, nil
}

// Exists reports whether path resolves to an entity whose type is among types.
// A path that does not resolve reports false, never an error.
func (s *Session) Exists(ctx context.Context, path string, types ...EntityType) (bool, error) {
	id, err := s.resolve(ctx, path)
	if err != nil {
		return false, utils.WrapExistsError(err)
	}
	if id == "" {
		return false, nil
	}

	entity, err := s.client.GetEntity(ctx, id)
	if err != nil {
		return false, utils.WrapExistsError(err)
	}
	for _, t := range types {
		if entity.Type == t {
			return true, nil
		}
	}
	return false, nil
}

// DirExists reports whether path resolves to a folder or project.
func (s *Session) DirExists(ctx context.Context, path string) (bool, error) {
	return s.Exists(ctx, path, TypeFolder, TypeProject)
}

// FileExists reports whether path resolves to a file.
func (s *Session) FileExists(ctx context.Context, path string) (bool, error) {
	return s.Exists(ctx, path, TypeFile)
}

// Mkdir creates every missing folder segment of path and returns the ID of
// the leaf folder. Intermediate segments that already exist are reused, but a
// path that already fully exists fails with ErrAlreadyExists.
func (s *Session) Mkdir(ctx context.Context, path string) (string, error) {
	id, err := s.mkdir(ctx, path)
	if err != nil {
		return "", utils.WrapMkdirError(err)
	}
	return id, nil
}

func (s *Session) mkdir(ctx context.Context, path string) (string, error) {
	segments := utils.SplitPath(path)
	if len(segments) == 0 {
		// the root itself always exists
		return "", fmt.Errorf("%q: %w", path, ErrAlreadyExists)
	}

	if id, err := s.resolve(ctx, path); err != nil {
		return "", err
	} else if id != "" {
		return "", fmt.Errorf("%q: %w", path, ErrAlreadyExists)
	}

	current := s.root
	for _, segment := range segments {
		id, err := s.client.FindChildID(ctx, current, segment)
		if err != nil {
			return "", err
		}
		if id == "" {
			folder, err := s.client.CreateFolder(ctx, segment, current)
			if err != nil {
				return "", err
			}
			id = folder.ID
		}
		current = id
	}

	s.logger.Debug("created folder", zap.String("path", path), zap.String("id", current))
	return current, nil
}

// Remove deletes the entity at path. Deleting a folder removes its whole
// subtree.
func (s *Session) Remove(ctx context.Context, path string) error {
	id, err := s.resolve(ctx, path)
	if err != nil {
		return utils.WrapRemoveError(err)
	}
	if id == "" {
		return utils.WrapRemoveError(fmt.Errorf("%q: %w", path, ErrNotFound))
	}

	if err := s.client.DeleteEntity(ctx, id); err != nil {
		return utils.WrapRemoveError(err)
	}

	s.logger.Debug("removed entity", zap.String("path", path), zap.String("id", id))
	return nil
}

// List returns the names of the immediate children of the folder at path, in
// store order. Nothing is flattened; nested entries appear only under their
// own parent.
func (s *Session) List(ctx context.Context, path string) ([]string, error) {
	children, err := s.children(ctx, path)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name)
	}
	return names, nil
}

// Children returns the immediate children of the folder at path, in store
// order.
func (s *Session) Children(ctx context.Context, path string) ([]Entity, error) {
	children, err := s.children(ctx, path)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	return children, nil
}

func (s *Session) children(ctx context.Context, path string) ([]Entity, error) {
	id, err := s.resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	}

	entity, err := s.client.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsContainer() {
		return nil, fmt.Errorf("%q: %w", path, ErrNotDirectory)
	}

	return s.client.ListChildren(ctx, id)
}

// Upload stores the local file or directory tree at localPath under the
// remote path remotePath and returns the ID of the entity created for the
// leaf. The destination's containing folder must already exist; intermediate
// remote folders are never created implicitly.
//
// A local file whose name starts with a dot is skipped unless
// upload.WithIncludeHidden is given; a skipped upload returns ("", nil).
// Uploading a directory mirrors the local tree: a remote folder named after
// the destination's last segment is created (or reused), then each local
// child is uploaded under it using the child's own name.
func (s *Session) Upload(ctx context.Context, localPath, remotePath string, opts ...options.UploadOption) (string, error) {
	includeHidden := false
	for _, opt := range opts {
		if _, ok := opt.(upload.IncludeHidden); ok {
			includeHidden = true
		}
	}

	id, err := s.upload(ctx, localPath, remotePath, includeHidden)
	if err != nil {
		return "", utils.WrapUploadError(err)
	}
	return id, nil
}

func (s *Session) upload(ctx context.Context, localPath, remotePath string, includeHidden bool) (string, error) {
	segments := utils.SplitPath(remotePath)
	if len(segments) == 0 {
		return "", fmt.Errorf("%q: %w", remotePath, ErrInvalidPath)
	}
	name := segments[len(segments)-1]

	parentID, err := s.parentID(ctx, remotePath)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(localPath)
	if err != nil {
		return "", err
	}

	switch {
	case info.Mode().IsRegular():
		if strings.HasPrefix(info.Name(), ".") && !includeHidden {
			s.logger.Debug("skipping hidden file", zap.String("local", localPath))
			return "", nil
		}
		entity, err := s.client.CreateFile(ctx, localPath, name, parentID)
		if err != nil {
			return "", err
		}
		s.logger.Debug("uploaded file",
			zap.String("local", localPath), zap.String("remote", remotePath), zap.String("id", entity.ID))
		return entity.ID, nil

	case info.IsDir():
		folderID, err := s.createOrReuseFolder(ctx, name, parentID)
		if err != nil {
			return "", err
		}
		entries, err := os.ReadDir(localPath)
		if err != nil {
			return "", err
		}
		sub := s.WithRoot(folderID)
		for _, entry := range entries {
			if _, err := sub.upload(ctx, filepath.Join(localPath, entry.Name()), entry.Name(), includeHidden); err != nil {
				return "", err
			}
		}
		return folderID, nil

	default:
		return "", fmt.Errorf("%q: %w", localPath, ErrInvalidPath)
	}
}

// createOrReuseFolder returns the ID of the folder named name under parentID,
// creating it only when absent. Uploads converge on existing folders rather
// than failing the way Mkdir does.
func (s *Session) createOrReuseFolder(ctx context.Context, name, parentID string) (string, error) {
	id, err := s.client.FindChildID(ctx, parentID, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	folder, err := s.client.CreateFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	return folder.ID, nil
}

// Download materializes the remote file or folder at remotePath as localPath.
// localPath must not exist yet and its parent directory must. A remote file
// is fetched to a temporary directory beside the target and renamed into
// place; a remote folder is recreated locally and its children downloaded
// recursively.
func (s *Session) Download(ctx context.Context, remotePath, localPath string) error {
	if err := s.download(ctx, remotePath, localPath); err != nil {
		return utils.WrapDownloadError(err)
	}
	return nil
}

func (s *Session) download(ctx context.Context, remotePath, localPath string) error {
	if _, err := os.Stat(localPath); err == nil {
		return fmt.Errorf("%q: %w", localPath, ErrLocalExists)
	} else if !os.IsNotExist(err) {
		return err
	}
	if _, err := os.Stat(filepath.Dir(localPath)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%q: %w", filepath.Dir(localPath), ErrLocalParentMissing)
		}
		return err
	}

	id, err := s.resolve(ctx, remotePath)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%q: %w", remotePath, ErrNotFound)
	}

	entity, err := s.client.GetEntity(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case entity.IsFile():
		return s.downloadFile(ctx, entity, localPath)
	case entity.IsContainer():
		return s.downloadFolder(ctx, entity, localPath)
	default:
		return fmt.Errorf("%q: %w", remotePath, ErrInvalidPath)
	}
}

// downloadFile fetches into a temporary directory next to the target so the
// final rename happens within one filesystem and is atomic.
func (s *Session) downloadFile(ctx context.Context, entity *Entity, localPath string) error {
	tmpDir, err := os.MkdirTemp(filepath.Dir(localPath), ".synfs-dl-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // best-effort temp cleanup

	fetched, err := s.client.FetchFile(ctx, entity.ID, tmpDir)
	if err != nil {
		return err
	}
	if err := os.Rename(fetched, localPath); err != nil {
		return err
	}

	s.logger.Debug("downloaded file", zap.String("id", entity.ID), zap.String("local", localPath))
	return nil
}

func (s *Session) downloadFolder(ctx context.Context, entity *Entity, localPath string) error {
	if err := os.Mkdir(localPath, 0755); err != nil {
		return err
	}

	children, err := s.client.ListChildren(ctx, entity.ID)
	if err != nil {
		return err
	}

	sub := s.WithRoot(entity.ID)
	for _, child := range children {
		if err := sub.download(ctx, child.Name, filepath.Join(localPath, child.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Move relocates or renames the entity at srcPath to dstPath. The source must
// exist, the destination must not, and the destination's containing folder
// must. Relocation and rename are two separate store calls; a failure between
// them leaves the entity under its new parent still carrying its old name.
func (s *Session) Move(ctx context.Context, srcPath, dstPath string) error {
	if err := s.move(ctx, srcPath, dstPath); err != nil {
		return utils.WrapMoveError(err)
	}
	return nil
}

func (s *Session) move(ctx context.Context, srcPath, dstPath string) error {
	srcID, dstParentID, dstName, err := s.checkTransfer(ctx, srcPath, dstPath)
	if err != nil {
		return err
	}

	if err := s.client.MoveEntity(ctx, srcID, dstParentID); err != nil {
		return err
	}
	if err := s.client.RenameEntity(ctx, srcID, dstName); err != nil {
		return err
	}

	s.logger.Debug("moved entity",
		zap.String("src", srcPath), zap.String("dst", dstPath), zap.String("id", srcID))
	return nil
}

// checkTransfer performs the source/destination validation shared by Move and
// Copy. The checks run in order and each failure is distinct: the source must
// resolve, the destination must not, and the destination's containing folder
// must.
func (s *Session) checkTransfer(ctx context.Context, srcPath, dstPath string) (srcID, dstParentID, dstName string, err error) {
	srcID, err = s.resolve(ctx, srcPath)
	if err != nil {
		return "", "", "", err
	}
	if srcID == "" {
		return "", "", "", fmt.Errorf("%q: %w", srcPath, ErrNotFound)
	}

	dstID, err := s.resolve(ctx, dstPath)
	if err != nil {
		return "", "", "", err
	}
	if dstID != "" {
		return "", "", "", fmt.Errorf("%q: %w", dstPath, ErrAlreadyExists)
	}

	dstParentID, err = s.parentID(ctx, dstPath)
	if err != nil {
		return "", "", "", err
	}

	return srcID, dstParentID, utils.LastSegment(dstPath), nil
}

// ParentID returns the ID of the folder containing path. The path itself need
// not exist, but its containing folder must. Asking for the parent of the
// session root fails with ErrNoParent rather than returning a misleading ID.
func (s *Session) ParentID(ctx context.Context, path string) (string, error) {
	id, err := s.parentID(ctx, path)
	if err != nil {
		return "", utils.WrapResolveError(err)
	}
	return id, nil
}

func (s *Session) parentID(ctx context.Context, path string) (string, error) {
	segments := utils.SplitPath(path)
	if len(segments) == 0 {
		return "", fmt.Errorf("%q: %w", path, ErrNoParent)
	}
	if len(segments) == 1 {
		return s.root, nil
	}

	dir := strings.Join(segments[:len(segments)-1], "/")
	id, err := s.resolve(ctx, dir)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%q: %w", dir, ErrInvalidDestination)
	}
	return id, nil
}

// Copy duplicates the entity at srcPath to dstPath, preserving subtree
// contents for folders. The same three preconditions as Move apply.
//
// The store has no single-call copy-and-rename primitive, so the copy is
// staged: the subtree is bulk-copied into a transient staging folder under
// the session root (keeping its original name), moved out to the destination
// with the destination's leaf name, and the staging folder is deleted.
// Deletion of the staging folder is attempted on every exit path after its
// creation; a failure during the bulk copy or the move-out can still leave a
// partly-relocated copy behind, and no rollback is attempted.
func (s *Session) Copy(ctx context.Context, srcPath, dstPath string) error {
	if err := s.copyEntity(ctx, srcPath, dstPath); err != nil {
		return utils.WrapCopyError(err)
	}
	return nil
}

func (s *Session) copyEntity(ctx context.Context, srcPath, dstPath string) (err error) {
	srcID, dstParentID, dstName, err := s.checkTransfer(ctx, srcPath, dstPath)
	if err != nil {
		return err
	}

	src, err := s.client.GetEntity(ctx, srcID)
	if err != nil {
		return err
	}

	// uuid-named staging keeps collisions unlikely; the liveness check below
	// still guards against one
	staging := stagingPrefix + uuid.NewString()
	if id, err := s.client.FindChildID(ctx, s.root, staging); err != nil {
		return err
	} else if id != "" {
		return fmt.Errorf("%q: %w", staging, ErrStagingConflict)
	}

	stagingFolder, err := s.client.CreateFolder(ctx, staging, s.root)
	if err != nil {
		return err
	}
	defer func() {
		if cleanupErr := s.client.DeleteEntity(ctx, stagingFolder.ID); cleanupErr != nil {
			err = errors.Join(err, fmt.Errorf("deleting staging folder %q: %w", staging, cleanupErr))
		}
	}()

	if err := s.client.CopySubtree(ctx, srcID, stagingFolder.ID); err != nil {
		return err
	}

	copiedID, err := s.client.FindChildID(ctx, stagingFolder.ID, src.Name)
	if err != nil {
		return err
	}
	if copiedID == "" {
		return fmt.Errorf("copy of %q missing from staging folder: %w", srcPath, ErrNotFound)
	}

	if err := s.client.MoveEntity(ctx, copiedID, dstParentID); err != nil {
		return err
	}
	if err := s.client.RenameEntity(ctx, copiedID, dstName); err != nil {
		return err
	}

	s.logger.Debug("copied entity",
		zap.String("src", srcPath), zap.String("dst", dstPath), zap.String("id", copiedID))
	return nil
}
