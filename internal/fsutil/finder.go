// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// FindFirst looks in dir for each of the given file names, in order, and
// returns the full path of the first one that exists as a regular file. The
// boolean is false when none exist, including when dir is not a directory;
// an error is returned only for other failures (e.g. permission denied).
func FindFirst(dir string, names ...string) (string, bool, error) {
	if len(names) == 0 {
		panic("names must not be empty")
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return "", false, err
		}
		if info.Mode().IsRegular() {
			return path, true, nil
		}
	}
	return "", false, nil
}
