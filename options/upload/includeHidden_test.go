package upload_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/options/upload"
)

type includeHiddenSuite struct {
	suite.Suite
}

func (s *includeHiddenSuite) TestWithIncludeHidden() {
	opt := upload.WithIncludeHidden()
	s.Implements((*options.UploadOption)(nil), opt)
	s.Equal("includeHidden", opt.UploadOptionName())

	_, ok := opt.(upload.IncludeHidden)
	s.True(ok, "WithIncludeHidden should return the IncludeHidden type")
}

func TestIncludeHidden(t *testing.T) {
	suite.Run(t, new(includeHiddenSuite))
}
