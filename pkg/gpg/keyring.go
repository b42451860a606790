// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package gpg

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/rs/zerolog"
)

var errNoEntity = errors.New("no entity found in key file")

// entityInfo summarizes the primary key of a public key file.
type entityInfo struct {
	fingerprint string
	identity    string
}

// readEntity parses the armored public key at path, returning a summary of
// its primary key.
func readEntity(path string) (entityInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return entityInfo{}, err
	}
	defer f.Close()

	el, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		return entityInfo{}, err
	}
	if len(el) == 0 {
		return entityInfo{}, errNoEntity
	}

	e := el[0]
	info := entityInfo{
		fingerprint: fmt.Sprintf("%X", e.PrimaryKey.Fingerprint),
	}
	for name := range e.Identities {
		info.identity = name
		break
	}

	return info, nil
}

// ImportKey imports the public key at keyPath into the gpg keyring. Any
// abnormal gpg invocation is fatal. There is no way to undo an import; a
// later verification failure leaves the key in the keyring.
func (t *Tool) ImportKey(ctx context.Context, keyPath string) error {
	logger := zerolog.Ctx(ctx)

	// Best-effort preflight: surface the key's fingerprint and identity for
	// diagnostics. Binary (non-armored) keys fail to parse here but import
	// fine, so a parse failure does not halt the flow.
	if info, err := readEntity(keyPath); err != nil {
		logger.Debug().Err(err).Str("key", keyPath).Msg("key preflight parse failed")
	} else {
		logger.Info().
			Str("fingerprint", info.fingerprint).
			Str("identity", info.identity).
			Msg("importing key")
	}

	if out, err := t.opts.run(ctx, t.opts.path, "--import", keyPath); err != nil {
		return fmt.Errorf("while importing key %v: %w: %s", keyPath, err, out)
	}

	return nil
}
