// internal/writers/file.go
package writers

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"systemsgen/internal/common"
)

// Stdout is the output path that writes to the caller's stdout.
const Stdout = "-"

// WriteFile replaces the contents of path with data, creating the file if
// needed. The parent directory must already exist. Data goes to a temp file
// beside path and is renamed over it, so readers never see a partial file.
// path == "-" writes to stdout instead; a broken pipe there is not an error.
func WriteFile(path string, data []byte, stdout io.Writer) error {
	if path == Stdout {
		if _, err := stdout.Write(data); err != nil && !IsBrokenPipe(err) {
			return common.WriteError(path, err)
		}
		return nil
	}

	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return common.WriteError(path, &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")})
		}
		mode = fi.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return common.WriteError(path, err)
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return common.WriteError(path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return common.WriteError(path, err)
	}
	return nil
}

// ReadCurrent returns the current contents of path, or ok == false when it
// cannot be read (absent, a directory, or stdout).
func ReadCurrent(path string) (data []byte, ok bool) {
	if path == Stdout {
		return nil, false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return b, true
}
