package mem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/synfs"
)

/**********************************
 ************TESTS*****************
 **********************************/

type memClientSuite struct {
	suite.Suite
	client  *Client
	project *synfs.Entity
	ctx     context.Context
}

func (s *memClientSuite) SetupTest() {
	s.client = NewClient()
	s.project = s.client.NewProject("research")
	s.ctx = context.Background()
}

// writeLocal drops content into a temp file and returns its path.
func (s *memClientSuite) writeLocal(name, content string) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0600))
	return path
}

func (s *memClientSuite) TestNewProject() {
	entity, err := s.client.GetEntity(s.ctx, s.project.ID)
	s.Require().NoError(err)
	s.Equal("research", entity.Name)
	s.Equal(synfs.TypeProject, entity.Type)
	s.Empty(entity.ParentID)
}

func (s *memClientSuite) TestFindChildID() {
	folder, err := s.client.CreateFolder(s.ctx, "data", s.project.ID)
	s.Require().NoError(err)

	s.Run("existing child", func() {
		id, err := s.client.FindChildID(s.ctx, s.project.ID, "data")
		s.Require().NoError(err)
		s.Equal(folder.ID, id)
	})

	s.Run("absent child is empty, not an error", func() {
		id, err := s.client.FindChildID(s.ctx, s.project.ID, "nope")
		s.Require().NoError(err)
		s.Empty(id)
	})

	s.Run("unknown parent fails", func() {
		_, err := s.client.FindChildID(s.ctx, "syn999999", "data")
		s.Require().Error(err)
		s.ErrorIs(err, synfs.ErrNotFound)
	})
}

func (s *memClientSuite) TestGetEntityUnknownID() {
	_, err := s.client.GetEntity(s.ctx, "syn999999")
	s.Require().Error(err)
	s.ErrorIs(err, synfs.ErrNotFound)
}

func (s *memClientSuite) TestCreateFile() {
	s.Run("creates a file with content", func() {
		local := s.writeLocal("a.txt", "first")
		file, err := s.client.CreateFile(s.ctx, local, "a.txt", s.project.ID)
		s.Require().NoError(err)
		s.Equal(synfs.TypeFile, file.Type)
		s.Equal(s.project.ID, file.ParentID)
	})

	s.Run("replaces an existing file in place", func() {
		first, err := s.client.CreateFile(s.ctx, s.writeLocal("b.txt", "old"), "b.txt", s.project.ID)
		s.Require().NoError(err)
		second, err := s.client.CreateFile(s.ctx, s.writeLocal("b.txt", "new"), "b.txt", s.project.ID)
		s.Require().NoError(err)
		s.Equal(first.ID, second.ID)

		dir := s.T().TempDir()
		fetched, err := s.client.FetchFile(s.ctx, first.ID, dir)
		s.Require().NoError(err)
		data, err := os.ReadFile(fetched)
		s.Require().NoError(err)
		s.Equal("new", string(data))
	})

	s.Run("refuses to shadow a folder", func() {
		_, err := s.client.CreateFolder(s.ctx, "taken", s.project.ID)
		s.Require().NoError(err)
		_, err = s.client.CreateFile(s.ctx, s.writeLocal("x", "x"), "taken", s.project.ID)
		s.Require().Error(err)
		s.ErrorIs(err, synfs.ErrAlreadyExists)
	})

	s.Run("refuses a file parent", func() {
		file, err := s.client.CreateFile(s.ctx, s.writeLocal("p.txt", "p"), "p.txt", s.project.ID)
		s.Require().NoError(err)
		_, err = s.client.CreateFile(s.ctx, s.writeLocal("q.txt", "q"), "q.txt", file.ID)
		s.Require().Error(err)
		s.ErrorIs(err, synfs.ErrNotDirectory)
	})
}

func (s *memClientSuite) TestCreateFolder() {
	folder, err := s.client.CreateFolder(s.ctx, "data", s.project.ID)
	s.Require().NoError(err)
	s.Equal(synfs.TypeFolder, folder.Type)

	_, err = s.client.CreateFolder(s.ctx, "data", s.project.ID)
	s.Require().Error(err)
	s.ErrorIs(err, synfs.ErrAlreadyExists)
}

func (s *memClientSuite) TestFetchFileRejectsContainers() {
	_, err := s.client.FetchFile(s.ctx, s.project.ID, s.T().TempDir())
	s.Require().Error(err)
	s.ErrorIs(err, synfs.ErrInvalidPath)
}

func (s *memClientSuite) TestListChildrenKeepsInsertionOrder() {
	for _, name := range []string{"zebra", "apple", "mango"} {
		_, err := s.client.CreateFolder(s.ctx, name, s.project.ID)
		s.Require().NoError(err)
	}

	children, err := s.client.ListChildren(s.ctx, s.project.ID)
	s.Require().NoError(err)

	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name)
	}
	s.Equal([]string{"zebra", "apple", "mango"}, names)
}

func (s *memClientSuite) TestDeleteEntityRemovesSubtree() {
	folder, err := s.client.CreateFolder(s.ctx, "data", s.project.ID)
	s.Require().NoError(err)
	file, err := s.client.CreateFile(s.ctx, s.writeLocal("a.txt", "a"), "a.txt", folder.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.client.DeleteEntity(s.ctx, folder.ID))

	_, err = s.client.GetEntity(s.ctx, folder.ID)
	s.ErrorIs(err, synfs.ErrNotFound)
	_, err = s.client.GetEntity(s.ctx, file.ID)
	s.ErrorIs(err, synfs.ErrNotFound)

	children, err := s.client.ListChildren(s.ctx, s.project.ID)
	s.Require().NoError(err)
	s.Empty(children)
}

func (s *memClientSuite) TestMoveEntity() {
	src, err := s.client.CreateFolder(s.ctx, "src", s.project.ID)
	s.Require().NoError(err)
	dst, err := s.client.CreateFolder(s.ctx, "dst", s.project.ID)
	s.Require().NoError(err)
	file, err := s.client.CreateFile(s.ctx, s.writeLocal("a.txt", "a"), "a.txt", src.ID)
	s.Require().NoError(err)

	s.Run("reparents keeping the name", func() {
		s.Require().NoError(s.client.MoveEntity(s.ctx, file.ID, dst.ID))

		moved, err := s.client.GetEntity(s.ctx, file.ID)
		s.Require().NoError(err)
		s.Equal(dst.ID, moved.ParentID)
		s.Equal("a.txt", moved.Name)

		id, err := s.client.FindChildID(s.ctx, src.ID, "a.txt")
		s.Require().NoError(err)
		s.Empty(id)
	})

	s.Run("rejects a name conflict in the new parent", func() {
		_, err := s.client.CreateFile(s.ctx, s.writeLocal("a.txt", "other"), "a.txt", src.ID)
		s.Require().NoError(err)
		conflicting, err := s.client.FindChildID(s.ctx, src.ID, "a.txt")
		s.Require().NoError(err)

		err = s.client.MoveEntity(s.ctx, conflicting, dst.ID)
		s.Require().Error(err)
		s.ErrorIs(err, synfs.ErrAlreadyExists)
	})

	s.Run("rejects moving a folder into its own subtree", func() {
		inner, err := s.client.CreateFolder(s.ctx, "inner", src.ID)
		s.Require().NoError(err)

		err = s.client.MoveEntity(s.ctx, src.ID, inner.ID)
		s.Require().Error(err)
		s.ErrorIs(err, synfs.ErrInvalidDestination)
	})
}

func (s *memClientSuite) TestRenameEntity() {
	folder, err := s.client.CreateFolder(s.ctx, "old", s.project.ID)
	s.Require().NoError(err)
	_, err = s.client.CreateFolder(s.ctx, "taken", s.project.ID)
	s.Require().NoError(err)

	s.Run("renames in place", func() {
		s.Require().NoError(s.client.RenameEntity(s.ctx, folder.ID, "new"))
		renamed, err := s.client.GetEntity(s.ctx, folder.ID)
		s.Require().NoError(err)
		s.Equal("new", renamed.Name)
	})

	s.Run("rejects a sibling conflict", func() {
		err := s.client.RenameEntity(s.ctx, folder.ID, "taken")
		s.Require().Error(err)
		s.ErrorIs(err, synfs.ErrAlreadyExists)
	})

	s.Run("renaming to its own name is a no-op", func() {
		s.Require().NoError(s.client.RenameEntity(s.ctx, folder.ID, "new"))
	})
}

func (s *memClientSuite) TestCopySubtree() {
	src, err := s.client.CreateFolder(s.ctx, "src", s.project.ID)
	s.Require().NoError(err)
	_, err = s.client.CreateFile(s.ctx, s.writeLocal("a.txt", "alpha"), "a.txt", src.ID)
	s.Require().NoError(err)
	inner, err := s.client.CreateFolder(s.ctx, "inner", src.ID)
	s.Require().NoError(err)
	_, err = s.client.CreateFile(s.ctx, s.writeLocal("b.txt", "beta"), "b.txt", inner.ID)
	s.Require().NoError(err)
	dst, err := s.client.CreateFolder(s.ctx, "dst", s.project.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.client.CopySubtree(s.ctx, src.ID, dst.ID))

	copied, err := s.client.FindChildID(s.ctx, dst.ID, "src")
	s.Require().NoError(err)
	s.Require().NotEmpty(copied)
	s.NotEqual(src.ID, copied, "copies get fresh IDs")

	copiedFile, err := s.client.FindChildID(s.ctx, copied, "a.txt")
	s.Require().NoError(err)
	s.Require().NotEmpty(copiedFile)

	copiedInner, err := s.client.FindChildID(s.ctx, copied, "inner")
	s.Require().NoError(err)
	copiedDeep, err := s.client.FindChildID(s.ctx, copiedInner, "b.txt")
	s.Require().NoError(err)
	s.Require().NotEmpty(copiedDeep)

	fetched, err := s.client.FetchFile(s.ctx, copiedDeep, s.T().TempDir())
	s.Require().NoError(err)
	data, err := os.ReadFile(fetched)
	s.Require().NoError(err)
	s.Equal("beta", string(data))

	// the original is untouched
	originals, err := s.client.ListChildren(s.ctx, src.ID)
	s.Require().NoError(err)
	s.Len(originals, 2)
}

func (s *memClientSuite) TestCopySubtreeRejectsNameConflict() {
	src, err := s.client.CreateFolder(s.ctx, "src", s.project.ID)
	s.Require().NoError(err)
	dst, err := s.client.CreateFolder(s.ctx, "dst", s.project.ID)
	s.Require().NoError(err)
	_, err = s.client.CreateFolder(s.ctx, "src", dst.ID)
	s.Require().NoError(err)

	err = s.client.CopySubtree(s.ctx, src.ID, dst.ID)
	s.Require().Error(err)
	s.ErrorIs(err, synfs.ErrAlreadyExists)
}

func TestMemClient(t *testing.T) {
	suite.Run(t, new(memClientSuite))
}
