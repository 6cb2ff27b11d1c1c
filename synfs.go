package synfs

import "context"

// EntityType is the concrete type the repository assigns to an entity.
type EntityType string

// Concrete entity types known to the repository.
const (
	TypeFile    EntityType = "org.sagebionetworks.repo.model.FileEntity"
	TypeFolder  EntityType = "org.sagebionetworks.repo.model.Folder"
	TypeProject EntityType = "org.sagebionetworks.repo.model.Project"
)

// Entity is a node in the repository: a file, folder, or project addressed by
// an opaque stable ID. Names are unique among siblings under the same parent;
// the repository enforces this and path resolution depends on it.
type Entity struct {
	ID       string
	Name     string
	ParentID string
	Type     EntityType
}

// IsFile reports whether the entity is a file.
func (e *Entity) IsFile() bool {
	return e.Type == TypeFile
}

// IsContainer reports whether the entity can hold children (folder or project).
func (e *Entity) IsContainer() bool {
	return e.Type == TypeFolder || e.Type == TypeProject
}

// Client defines the subset of repository operations used by Session.
// This interface limits the API surface and enables efficient mocking in tests.
// backend/rest implements it against the repository's REST API; backend/mem
// provides an in-memory implementation.
type Client interface {
	// FindChildID returns the ID of the child of parentID named name.
	// A child that does not exist is reported as ("", nil), not an error.
	FindChildID(ctx context.Context, parentID, name string) (string, error)

	// GetEntity returns entity metadata without fetching file content.
	GetEntity(ctx context.Context, id string) (*Entity, error)

	// CreateFile stores the local file at localPath as a file entity named
	// name under parentID. If an entity of that name already exists its
	// content is replaced.
	CreateFile(ctx context.Context, localPath, name, parentID string) (*Entity, error)

	// CreateFolder creates a folder entity named name under parentID.
	// Creating a name that already exists under parentID is an error.
	CreateFolder(ctx context.Context, name, parentID string) (*Entity, error)

	// FetchFile downloads the content of the file entity id into targetDir
	// and returns the path of the local file written.
	FetchFile(ctx context.Context, id, targetDir string) (string, error)

	// ListChildren returns the immediate children of parentID in store order.
	ListChildren(ctx context.Context, parentID string) ([]Entity, error)

	// DeleteEntity removes the entity and, for containers, its whole subtree.
	DeleteEntity(ctx context.Context, id string) error

	// MoveEntity reparents the entity under newParentID, keeping its name.
	MoveEntity(ctx context.Context, id, newParentID string) error

	// RenameEntity renames the entity in place.
	RenameEntity(ctx context.Context, id, newName string) error

	// CopySubtree recursively copies the entity sourceID and any children
	// under destParentID, preserving names.
	CopySubtree(ctx context.Context, sourceID, destParentID string) error
}
