package source

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is the sentinel matched by every NotFoundError.
var ErrNotFound = errors.New("scenario tree not found")

// NotFoundError reports a dataset without a scenario tree file.
type NotFoundError struct {
	// Dataset is the directory that was searched, as given by the caller.
	Dataset string
	// Path is the absolute location of the canonical file that was expected.
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in dataset %s (expected %s)", filepath.Base(e.Path), e.Dataset, e.Path)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
