package service

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// dirSize sums the lengths of every regular file below root. Symlinks below
// the root are not followed and count as zero. The first error aborts the walk.
func dirSize(root string) (uint64, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	var total uint64
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to compute size of %s: %w", root, err)
	}
	return total, nil
}
