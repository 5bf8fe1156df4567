package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Scan recursively collects files under root whose name ends in ext.
// Subdirectories are descended as they are met, and entries keep the
// order the filesystem lists them in.
func Scan(fs afero.Fs, root, ext string) ([]string, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrInputNotDir)
	}

	var files []string
	if err := scanDir(fs, root, ext, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func scanDir(fs afero.Fs, dir, ext string, files *[]string) error {
	f, err := fs.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	entries, err := f.Readdir(-1)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if err := scanDir(fs, path, ext, files); err != nil {
				return err
			}
		case entry.Mode().IsRegular() && strings.HasSuffix(entry.Name(), ext):
			*files = append(*files, path)
		}
	}
	return nil
}
