package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiiranathan/pdfdedup/logging"
)

// WalkDir returns every regular file below dir whose name ends with one of
// suffixes. Matching is case-sensitive. Paths are returned in lexical order.
// Unreadable subdirectories are logged and skipped.
func WalkDir(dir string, suffixes []string, skipHidden bool) ([]string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, dir)
		}
		return nil, fmt.Errorf("unable to read %s: %w", dir, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			logging.Log.WithField("path", path).WithError(err).Warn("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip the directory itself
		if path == dir {
			return nil
		}

		if skipHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && hasAnySuffix(d.Name(), suffixes) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return files, nil
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
