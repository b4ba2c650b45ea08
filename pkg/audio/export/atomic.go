// ABOUTME: Atomic file writer and output error type
// ABOUTME: Writes through a uuid-named temp file renamed into place on success
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrOutputWrite matches any *OutputWriteError
var ErrOutputWrite = errors.New("output write failed")

// OutputWriteError reports a failure to produce an output file
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

func (e *OutputWriteError) Is(target error) bool {
	return target == ErrOutputWrite
}

// WriteAtomic calls write with a temporary file next to path and renames it
// to path once write succeeds. The temporary file never outlives a failure.
func WriteAtomic(path string, write func(w io.WriteSeeker) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	if err = f.Sync(); err != nil {
		return &OutputWriteError{Path: path, Err: fmt.Errorf("sync failed: %w", err)}
	}
	if err = f.Close(); err != nil {
		return &OutputWriteError{Path: path, Err: fmt.Errorf("close failed: %w", err)}
	}
	if err = os.Rename(tmp, path); err != nil {
		return &OutputWriteError{Path: path, Err: fmt.Errorf("rename failed: %w", err)}
	}

	return nil
}
