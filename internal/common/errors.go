// internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError is the single I/O failure class: the input could not be
// opened or read, or the output could not be written.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ReadError wraps err as a FileAccessError for an input path.
func ReadError(path string, err error) error {
	return &FileAccessError{Op: "read", Path: path, Err: err}
}

// WriteError wraps err as a FileAccessError for an output path.
func WriteError(path string, err error) error {
	return &FileAccessError{Op: "write", Path: path, Err: err}
}

// IsFileAccess reports whether err is (or wraps) a FileAccessError.
func IsFileAccess(err error) bool {
	var fe *FileAccessError
	return errors.As(err, &fe)
}
