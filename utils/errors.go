package utils

import "fmt"

// WrapResolveError returns a wrapped resolve error
func WrapResolveError(err error) error {
	return fmt.Errorf("resolve error: %w", err)
}

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return fmt.Errorf("exists error: %w", err)
}

// WrapMkdirError returns a wrapped mkdir error
func WrapMkdirError(err error) error {
	return fmt.Errorf("mkdir error: %w", err)
}

// WrapRemoveError returns a wrapped remove error
func WrapRemoveError(err error) error {
	return fmt.Errorf("remove error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapUploadError returns a wrapped upload error
func WrapUploadError(err error) error {
	return fmt.Errorf("upload error: %w", err)
}

// WrapDownloadError returns a wrapped download error
func WrapDownloadError(err error) error {
	return fmt.Errorf("download error: %w", err)
}

// WrapMoveError returns a wrapped move error
func WrapMoveError(err error) error {
	return fmt.Errorf("move error: %w", err)
}

// WrapCopyError returns a wrapped copy error
func WrapCopyError(err error) error {
	return fmt.Errorf("copy error: %w", err)
}
