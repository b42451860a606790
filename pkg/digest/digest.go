// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

// Package digest computes cryptographic digests of files and directory trees.
package digest

import (
	"crypto"
	"errors"
	"fmt"
	"io"
	"strings"

	// Register the hash functions backing the supported algorithms.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/spf13/pflag"
)

var (
	errHashUnavailable      = errors.New("hash algorithm unavailable")
	errAlgorithmUnsupported = errors.New("hash algorithm unsupported")
)

// supportedAlgorithms maps each selectable hash function to its flag name.
var supportedAlgorithms = map[crypto.Hash]string{
	crypto.MD5:    "md5",
	crypto.SHA1:   "sha1",
	crypto.SHA256: "sha256",
	crypto.SHA384: "sha384",
	crypto.SHA512: "sha512",
}

// Algorithm is a hash algorithm drawn from the supported set. The zero value
// is not valid; use one of the package-level values, or populate it via Set.
type Algorithm struct {
	hash crypto.Hash
}

var _ pflag.Value = (*Algorithm)(nil)

// Supported algorithms.
var (
	MD5    = Algorithm{crypto.MD5}
	SHA1   = Algorithm{crypto.SHA1}
	SHA256 = Algorithm{crypto.SHA256}
	SHA384 = Algorithm{crypto.SHA384}
	SHA512 = Algorithm{crypto.SHA512}
)

// String returns the name of the algorithm.
func (a Algorithm) String() string {
	return supportedAlgorithms[a.hash]
}

// Set sets a to the algorithm named by value. Names are matched
// case-insensitively. If value does not name a supported algorithm,
// errAlgorithmUnsupported is returned; this is the argument-validation
// boundary, so no hashing is ever attempted with an unsupported name.
func (a *Algorithm) Set(value string) error {
	name := strings.ToLower(value)
	for h, n := range supportedAlgorithms {
		if n == name {
			a.hash = h
			return nil
		}
	}
	return fmt.Errorf("%w: %v", errAlgorithmUnsupported, value)
}

// Type returns the type of flag value represented by a.
func (a Algorithm) Type() string {
	return "algorithm"
}

// hashValue calculates a digest by applying hash function h to the contents read from r. If h is
// not available, errHashUnavailable is returned.
func hashValue(h crypto.Hash, r io.Reader) ([]byte, error) {
	if !h.Available() {
		return nil, errHashUnavailable
	}

	w := h.New()
	if _, err := io.Copy(w, r); err != nil {
		return nil, err
	}
	return w.Sum(nil), nil
}

// FileDigest records the digest of the contents of a single file.
type FileDigest struct {
	Algorithm Algorithm
	Value     []byte
	Path      string
}

// String returns d in "value  path" form, with the digest value in hex.
func (d FileDigest) String() string {
	return fmt.Sprintf("%x  %v", d.Value, d.Path)
}
