package cli

import (
	"os"
	"path/filepath"
)

// shouldSkipPack implements the incremental-build check: it compares
// last-write-times between inputs and the atlas file, skipping only if
// the atlas file exists and is newer than every input under dir.
func shouldSkipPack(dir, atlasPath string) (bool, error) {
	atlasInfo, err := os.Stat(atlasPath)
	if err != nil {
		return false, nil
	}

	newerFound := false
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(atlasInfo.ModTime()) {
			newerFound = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return !newerFound, nil
}
