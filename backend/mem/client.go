package mem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/c2fo/synfs"
)

// Client is an in-memory implementation of synfs.Client. It keeps every
// entity, its children (in insertion order), and file contents in process
// memory, guarded by a single mutex. Entities returned to callers are copies;
// mutating them does not affect the store.
type Client struct {
	mu       sync.Mutex
	seq      int
	entities map[string]*synfs.Entity
	order    map[string][]string
	content  map[string][]byte
}

// NewClient returns an empty in-memory store. Create a project with
// NewProject before rooting a Session on it.
func NewClient() *Client {
	return &Client{
		entities: make(map[string]*synfs.Entity),
		order:    make(map[string][]string),
		content:  make(map[string][]byte),
	}
}

// NewProject creates a top-level project entity and returns it. Projects have
// no parent and serve as session roots.
func (c *Client) NewProject(name string) *synfs.Entity {
	c.mu.Lock()
	defer c.mu.Unlock()

	project := &synfs.Entity{
		ID:   c.nextID(),
		Name: name,
		Type: synfs.TypeProject,
	}
	c.entities[project.ID] = project
	c.order[project.ID] = nil
	return clone(project)
}

// FindChildID returns the ID of the child of parentID named name, or ""
// when no such child exists.
func (c *Client) FindChildID(_ context.Context, parentID, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.get(parentID); err != nil {
		return "", err
	}
	return c.find(parentID, name), nil
}

// GetEntity returns the entity with the given ID.
func (c *Client) GetEntity(_ context.Context, id string) (*synfs.Entity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, err := c.get(id)
	if err != nil {
		return nil, err
	}
	return clone(entity), nil
}

// CreateFile stores the local file at localPath as a file entity named name
// under parentID. An existing file of the same name is replaced in place,
// keeping its ID; a container of the same name fails with ErrAlreadyExists.
func (c *Client) CreateFile(_ context.Context, localPath, name, parentID string) (*synfs.Entity, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkContainer(parentID); err != nil {
		return nil, err
	}

	if id := c.find(parentID, name); id != "" {
		existing := c.entities[id]
		if existing.IsContainer() {
			return nil, fmt.Errorf("%q: %w", name, synfs.ErrAlreadyExists)
		}
		c.content[id] = data
		return clone(existing), nil
	}

	file := &synfs.Entity{
		ID:       c.nextID(),
		Name:     name,
		ParentID: parentID,
		Type:     synfs.TypeFile,
	}
	c.entities[file.ID] = file
	c.content[file.ID] = data
	c.order[parentID] = append(c.order[parentID], file.ID)
	return clone(file), nil
}

// CreateFolder creates a folder entity named name under parentID. Any
// existing child of that name fails with ErrAlreadyExists.
func (c *Client) CreateFolder(_ context.Context, name, parentID string) (*synfs.Entity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkContainer(parentID); err != nil {
		return nil, err
	}
	if id := c.find(parentID, name); id != "" {
		return nil, fmt.Errorf("%q: %w", name, synfs.ErrAlreadyExists)
	}

	folder := &synfs.Entity{
		ID:       c.nextID(),
		Name:     name,
		ParentID: parentID,
		Type:     synfs.TypeFolder,
	}
	c.entities[folder.ID] = folder
	c.order[parentID] = append(c.order[parentID], folder.ID)
	return clone(folder), nil
}

// FetchFile writes the contents of the file entity id into targetDir under
// the entity's own name and returns the path written.
func (c *Client) FetchFile(_ context.Context, id, targetDir string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, err := c.get(id)
	if err != nil {
		return "", err
	}
	if !entity.IsFile() {
		return "", fmt.Errorf("%q is not a file: %w", id, synfs.ErrInvalidPath)
	}

	target := filepath.Join(targetDir, entity.Name)
	if err := os.WriteFile(target, c.content[id], 0600); err != nil {
		return "", err
	}
	return target, nil
}

// ListChildren returns the immediate children of parentID in insertion order.
func (c *Client) ListChildren(_ context.Context, parentID string) ([]synfs.Entity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkContainer(parentID); err != nil {
		return nil, err
	}

	children := make([]synfs.Entity, 0, len(c.order[parentID]))
	for _, id := range c.order[parentID] {
		children = append(children, *c.entities[id])
	}
	return children, nil
}

// DeleteEntity removes the entity id and, for containers, its whole subtree.
func (c *Client) DeleteEntity(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, err := c.get(id)
	if err != nil {
		return err
	}

	c.detach(entity)
	c.removeSubtree(id)
	return nil
}

// MoveEntity reparents the entity id under newParentID, keeping its name.
// Moving a container into its own subtree or onto a sibling of the same name
// is rejected.
func (c *Client) MoveEntity(_ context.Context, id, newParentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, err := c.get(id)
	if err != nil {
		return err
	}
	if err := c.checkContainer(newParentID); err != nil {
		return err
	}
	for ancestor := newParentID; ancestor != ""; ancestor = c.entities[ancestor].ParentID {
		if ancestor == id {
			return fmt.Errorf("%q is inside %q: %w", newParentID, id, synfs.ErrInvalidDestination)
		}
	}
	if existing := c.find(newParentID, entity.Name); existing != "" && existing != id {
		return fmt.Errorf("%q: %w", entity.Name, synfs.ErrAlreadyExists)
	}

	c.detach(entity)
	entity.ParentID = newParentID
	c.order[newParentID] = append(c.order[newParentID], id)
	return nil
}

// RenameEntity gives the entity id the name newName, which must be free among
// its siblings.
func (c *Client) RenameEntity(_ context.Context, id, newName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, err := c.get(id)
	if err != nil {
		return err
	}
	if existing := c.find(entity.ParentID, newName); existing != "" && existing != id {
		return fmt.Errorf("%q: %w", newName, synfs.ErrAlreadyExists)
	}

	entity.Name = newName
	return nil
}

// CopySubtree deep-copies the entity srcID (and, for containers, everything
// under it) into dstParentID. Copies keep their original names and get fresh
// IDs; file contents are duplicated.
func (c *Client) CopySubtree(_ context.Context, srcID, dstParentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, err := c.get(srcID)
	if err != nil {
		return err
	}
	if err := c.checkContainer(dstParentID); err != nil {
		return err
	}
	if existing := c.find(dstParentID, src.Name); existing != "" {
		return fmt.Errorf("%q: %w", src.Name, synfs.ErrAlreadyExists)
	}

	c.copySubtree(srcID, dstParentID)
	return nil
}

// get returns the live entity for id. Callers hold the mutex.
func (c *Client) get(id string) (*synfs.Entity, error) {
	entity, ok := c.entities[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, synfs.ErrNotFound)
	}
	return entity, nil
}

func (c *Client) checkContainer(id string) error {
	entity, err := c.get(id)
	if err != nil {
		return err
	}
	if !entity.IsContainer() {
		return fmt.Errorf("%q is not a container: %w", id, synfs.ErrNotDirectory)
	}
	return nil
}

func (c *Client) find(parentID, name string) string {
	for _, id := range c.order[parentID] {
		if c.entities[id].Name == name {
			return id
		}
	}
	return ""
}

// detach removes the entity from its parent's child list without touching the
// entity itself.
func (c *Client) detach(entity *synfs.Entity) {
	siblings := c.order[entity.ParentID]
	for i, id := range siblings {
		if id == entity.ID {
			c.order[entity.ParentID] = append(siblings[:i], siblings[i+1:]...)
			return
		}
	}
}

func (c *Client) removeSubtree(id string) {
	for _, childID := range c.order[id] {
		c.removeSubtree(childID)
	}
	delete(c.order, id)
	delete(c.content, id)
	delete(c.entities, id)
}

func (c *Client) copySubtree(srcID, dstParentID string) {
	src := c.entities[srcID]
	dup := &synfs.Entity{
		ID:       c.nextID(),
		Name:     src.Name,
		ParentID: dstParentID,
		Type:     src.Type,
	}
	c.entities[dup.ID] = dup
	c.order[dstParentID] = append(c.order[dstParentID], dup.ID)

	if src.IsFile() {
		data := make([]byte, len(c.content[srcID]))
		copy(data, c.content[srcID])
		c.content[dup.ID] = data
		return
	}
	for _, childID := range c.order[srcID] {
		c.copySubtree(childID, dup.ID)
	}
}

func (c *Client) nextID() string {
	c.seq++
	return fmt.Sprintf("syn%d", 100000+c.seq)
}

func clone(e *synfs.Entity) *synfs.Entity {
	dup := *e
	return &dup
}
