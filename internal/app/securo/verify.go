// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package securo

import (
	"context"
	"fmt"
	"os"

	"github.com/Dextroz/Securo/pkg/gpg"
	"github.com/rs/zerolog"
)

// VerifySignature runs the signature-verification flow: ensure GnuPG is
// installed, import the public key at keyPath, then verify the detached
// signature at sigPath over the file at filePath. The flow halts at the
// first error; a completed key import is not undone when a later step fails.
// On success, the complete gpg output is written so trust-level caveats
// remain visible to the caller.
func (a *App) VerifySignature(ctx context.Context, keyPath, sigPath, filePath string) error {
	logger := zerolog.Ctx(ctx)

	for _, path := range []string{keyPath, sigPath, filePath} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("while checking arguments: %w", err)
		}
	}

	t, err := gpg.NewTool(a.opts.gpg...)
	if err != nil {
		return err
	}

	if err := t.EnsureInstalled(ctx); err != nil {
		return err
	}

	// Version parse failures are diagnostic only.
	if v, err := t.Version(ctx); err == nil {
		logger.Debug().Str("path", t.Path()).Stringer("version", v).Msg("using gpg")
	} else {
		logger.Debug().Err(err).Str("path", t.Path()).Msg("using gpg")
	}

	if err := t.ImportKey(ctx, keyPath); err != nil {
		return err
	}

	r, err := t.VerifyDetached(ctx, sigPath, filePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.opts.out, "%v passed verification\n", filePath)
	fmt.Fprintf(a.opts.out, "%s", r.Output)

	return nil
}
