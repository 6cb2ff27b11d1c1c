package synfs

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNotFound - the path does not resolve to an entity
	ErrNotFound = Error("entity not found")

	// ErrAlreadyExists - an entity already exists at the destination path
	ErrAlreadyExists = Error("entity already exists")

	// ErrInvalidDestination - the destination's containing folder does not exist
	ErrInvalidDestination = Error("destination directory does not exist")

	// ErrNotDirectory - the path resolves to something other than a folder or project
	ErrNotDirectory = Error("entity is not a directory")

	// ErrInvalidPath - the path resolves to neither a file nor a directory
	ErrInvalidPath = Error("path is neither a file nor a directory")

	// ErrLocalExists - the local download target already exists
	ErrLocalExists = Error("local path already exists")

	// ErrLocalParentMissing - the local download target's parent directory does not exist
	ErrLocalParentMissing = Error("local parent directory does not exist")

	// ErrNoParent - the session root has no containing folder
	ErrNoParent = Error("root entity has no parent")

	// ErrStagingConflict - a folder with the generated staging name already exists
	ErrStagingConflict = Error("staging folder already exists")
)
