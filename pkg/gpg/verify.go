// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package gpg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
)

// goodSignatureMarker is the substring of gpg's verify output that indicates
// a valid signature. Verification keys off this marker rather than the exit
// status: gpg emits advisory messages (key trust warnings and the like) on a
// channel that does not map cleanly onto its exit codes.
const goodSignatureMarker = "Good signature"

// VerificationError records a failed signature verification, retaining the
// complete gpg output for inspection.
type VerificationError struct {
	Path   string // Path of the file that failed verification.
	Output []byte // Complete combined output of the gpg invocation.
	Err    error  // Wrapped invocation error, if any.
}

func (e *VerificationError) Error() string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "%v failed signature verification", e.Path)

	if e.Err != nil {
		fmt.Fprintf(b, ": %v", e.Err)
	}

	if len(e.Output) > 0 {
		fmt.Fprintf(b, "\n%s", e.Output)
	}

	return b.String()
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is compares e against target. If target is a VerificationError and matches
// e or target has a zero value Path, true is returned.
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return e.Path == t.Path || t.Path == ""
}

// VerifyResult is the outcome of a detached signature verification.
type VerifyResult struct {
	Output []byte // Complete combined output of the gpg invocation.
	OK     bool   // True if Output contains the good signature marker.
}

// VerifyDetached verifies the detached signature at sigPath over the file at
// filePath. The verification passes if and only if the gpg output contains
// the good signature marker; the exit status is not consulted in either
// direction. The raw output is returned on both pass and fail so that
// callers can inspect trust-level caveats.
func (t *Tool) VerifyDetached(ctx context.Context, sigPath, filePath string) (VerifyResult, error) {
	out, err := t.opts.run(ctx, t.opts.path, "--verify", sigPath, filePath)

	r := VerifyResult{
		Output: out,
		OK:     bytes.Contains(out, []byte(goodSignatureMarker)),
	}
	if r.OK {
		return r, nil
	}

	return r, &VerificationError{Path: filePath, Output: out, Err: err}
}

var errVersionMalformed = errors.New("gpg version output malformed")

// Version reports the version of the configured gpg binary, parsed from the
// first line of its version output.
func (t *Tool) Version(ctx context.Context) (semver.Version, error) {
	out, err := t.opts.run(ctx, t.opts.path, "--version")
	if err != nil {
		return semver.Version{}, fmt.Errorf("while querying gpg version: %w", err)
	}

	// The first line has the form "gpg (GnuPG) 2.4.3".
	line, _, _ := strings.Cut(string(out), "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return semver.Version{}, errVersionMalformed
	}

	v, err := semver.Parse(fields[len(fields)-1])
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w: %v", errVersionMalformed, err)
	}
	return v, nil
}
