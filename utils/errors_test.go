package utils_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/synfs/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type errorsSuite struct {
	suite.Suite
}

// TestErrorWrapFunctions tests all error wrap functions preserve the wrapped error
func (s *errorsSuite) TestErrorWrapFunctions() {
	testError := errors.New("test error")

	testCases := []struct {
		name        string
		wrapFunc    func(error) error
		expectedMsg string
	}{
		{
			name:        "WrapResolveError",
			wrapFunc:    utils.WrapResolveError,
			expectedMsg: "resolve error: test error",
		},
		{
			name:        "WrapExistsError",
			wrapFunc:    utils.WrapExistsError,
			expectedMsg: "exists error: test error",
		},
		{
			name:        "WrapMkdirError",
			wrapFunc:    utils.WrapMkdirError,
			expectedMsg: "mkdir error: test error",
		},
		{
			name:        "WrapRemoveError",
			wrapFunc:    utils.WrapRemoveError,
			expectedMsg: "remove error: test error",
		},
		{
			name:        "WrapListError",
			wrapFunc:    utils.WrapListError,
			expectedMsg: "list error: test error",
		},
		{
			name:        "WrapUploadError",
			wrapFunc:    utils.WrapUploadError,
			expectedMsg: "upload error: test error",
		},
		{
			name:        "WrapDownloadError",
			wrapFunc:    utils.WrapDownloadError,
			expectedMsg: "download error: test error",
		},
		{
			name:        "WrapMoveError",
			wrapFunc:    utils.WrapMoveError,
			expectedMsg: "move error: test error",
		},
		{
			name:        "WrapCopyError",
			wrapFunc:    utils.WrapCopyError,
			expectedMsg: "copy error: test error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			wrapped := tc.wrapFunc(testError)
			s.Require().Error(wrapped)
			s.Equal(tc.expectedMsg, wrapped.Error())
			s.ErrorIs(wrapped, testError, "wrapped error should unwrap to the original")
		})
	}
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(errorsSuite))
}
