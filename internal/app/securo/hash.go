// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package securo

import (
	"context"
	"fmt"
	"os"

	"github.com/Dextroz/Securo/pkg/digest"
	"github.com/rs/zerolog"
)

// Hash runs the hash flow: calculate the digest of the file at path using
// algorithm a, or of every file below path if it refers to a directory, and
// write one "value  path" line per file. A directory batch is all or
// nothing; the first unreadable file aborts the flow with no output.
func (a *App) Hash(ctx context.Context, algo digest.Algorithm, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("while checking arguments: %w", err)
	}

	var digests []digest.FileDigest
	if fi.IsDir() {
		digests, err = digest.Tree(algo, path)
	} else {
		var fd digest.FileDigest
		if fd, err = digest.File(algo, path); err == nil {
			digests = []digest.FileDigest{fd}
		}
	}
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("algorithm", algo).
		Int("files", len(digests)).
		Msg("hashing complete")

	for _, fd := range digests {
		fmt.Fprintln(a.opts.out, fd)
	}

	return nil
}
