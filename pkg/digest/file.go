// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package digest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File calculates the digest of the contents of the file at path using algorithm a.
func File(a Algorithm, path string) (FileDigest, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileDigest{}, fmt.Errorf("while opening %v: %w", path, err)
	}
	defer f.Close()

	value, err := hashValue(a.hash, f)
	if err != nil {
		return FileDigest{}, fmt.Errorf("while hashing %v: %w", path, err)
	}

	return FileDigest{Algorithm: a, Value: value, Path: path}, nil
}

// Tree calculates digests for every regular file at or below path using algorithm a, in lexical
// traversal order. Non-regular entries (directories, symbolic links, devices) are skipped. The
// first error encountered aborts the traversal; no partial results are returned.
func Tree(a Algorithm, path string) ([]FileDigest, error) {
	var digests []FileDigest

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fd, err := File(a, p)
		if err != nil {
			return err
		}
		digests = append(digests, fd)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("while walking %v: %w", path, err)
	}

	return digests, nil
}
