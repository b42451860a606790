// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package gpg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Dextroz/Securo/internal/pkg/httpclient"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EnsureInstalled probes for the configured gpg binary, and installs it if
// absent. When the binary is already present, no network or filesystem side
// effects occur, so repeated calls are idempotent.
//
// The downloaded installer is executed without any integrity verification
// beyond the TLS channel, and a zero exit status from the installer is
// trusted without re-probing for the binary. Both behaviors are inherited
// from the original tool; a silently failed installation surfaces later, as
// an invocation failure.
func (t *Tool) EnsureInstalled(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	_, err := os.Stat(t.opts.path)
	if err == nil {
		logger.Debug().Str("path", t.opts.path).Msg("gpg already installed")
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("while probing for gpg: %w", err)
	}

	installer, err := t.downloadInstaller(ctx)
	if err != nil {
		return err
	}
	defer os.Remove(installer)

	logger.Info().Str("installer", installer).Msg("running GnuPG installer")

	if out, err := t.opts.run(ctx, installer, t.opts.silentArgs...); err != nil {
		return fmt.Errorf("while running GnuPG installer: %w: %s", err, out)
	}

	return nil
}

// downloadInstaller fetches the GnuPG installer into the download directory
// under a unique name, returning the path it was written to.
func (t *Tool) downloadInstaller(ctx context.Context) (string, error) {
	dest := filepath.Join(t.opts.downloadDir, fmt.Sprintf("gpg4win-%v.exe", uuid.New()))

	zerolog.Ctx(ctx).Info().
		Str("url", t.opts.installerURL).
		Str("dest", dest).
		Msg("downloading GnuPG installer")

	if err := httpclient.Download(ctx, t.opts.client, t.opts.installerURL, dest); err != nil {
		return "", fmt.Errorf("while downloading GnuPG installer: %w", err)
	}

	return dest, nil
}
