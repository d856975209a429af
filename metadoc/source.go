package metadoc

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ReadSources reads the given paths. A directory is walked recursively in
// lexical order and contributes the regular files whose extension is in
// extensions (an empty string selects files without one). A path naming a
// file is always read.
func ReadSources(paths, extensions []string) ([]Source, error) {
	var sources []Source

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		if !info.IsDir() {
			src, err := readSource(root)
			if err != nil {
				return nil, err
			}

			sources = append(sources, src)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.Type().IsRegular() || !slices.Contains(extensions, filepath.Ext(path)) {
				return nil
			}

			src, err := readSource(path)
			if err != nil {
				return err
			}

			sources = append(sources, src)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	return sources, nil
}

func readSource(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return Source{Path: path, Content: data}, nil
}
