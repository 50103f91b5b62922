package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Removes every artifact path under root that currently exists.
//
// Directories are removed recursively. Symlinks are removed, not followed.
// Paths that do not exist are skipped. All paths are validated before the
// first removal, and removal goes through an [os.Root] so no path, including
// one crossing a symlinked parent directory, can reach outside root.
// Returns the paths that were removed, in the given order.
func Clean(root string, paths []string) ([]string, error) {
	cleaned := make([]string, len(paths))
	for i, p := range paths {
		c, err := resolve(p)
		if err != nil {
			return nil, err
		}
		cleaned[i] = c
	}

	r, err := os.OpenRoot(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemove, err)
	}
	defer r.Close()

	var removed []string
	for i, c := range cleaned {
		if _, err := r.Lstat(c); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return removed, fmt.Errorf("%w: %s: %w", ErrRemove, paths[i], err)
		}

		if err := r.RemoveAll(c); err != nil {
			return removed, fmt.Errorf("%w: %s: %w", ErrRemove, paths[i], err)
		}

		slog.Debug("removed artifact", "path", paths[i])
		removed = append(removed, paths[i])
	}

	return removed, nil
}

// Cleans a relative artifact path, refusing absolute paths, empty paths,
// the root itself, and paths that lexically escape it.
func resolve(p string) (string, error) {
	if p == "" || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, p)
	}

	clean := filepath.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, p)
	}

	return clean, nil
}
