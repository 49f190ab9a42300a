package listing

import (
	"errors"
	"fmt"
)

var (
	ErrFileAccess       = errors.New("listing: file access")
	ErrMalformedListing = errors.New("listing: malformed listing")
	ErrListingMismatch  = errors.New("listing: listing does not match data")
)

// FileAccessError reports a source that cannot be read or a destination that
// cannot be created or written.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("listing: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("listing: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

func accessError(op, path string, err error) error {
	return &FileAccessError{Op: op, Path: path, Err: err}
}
