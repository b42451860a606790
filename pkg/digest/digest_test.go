// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package digest

import (
	"errors"
	"testing"
)

func TestAlgorithmSet(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Algorithm
		wantErr error
	}{
		{name: "MD5", value: "md5", want: MD5},
		{name: "SHA1", value: "sha1", want: SHA1},
		{name: "SHA256", value: "sha256", want: SHA256},
		{name: "SHA384", value: "sha384", want: SHA384},
		{name: "SHA512", value: "sha512", want: SHA512},
		{name: "UpperCase", value: "SHA256", want: SHA256},
		{name: "MixedCase", value: "Sha512", want: SHA512},
		{name: "Empty", value: "", wantErr: errAlgorithmUnsupported},
		{name: "SHA224", value: "sha224", wantErr: errAlgorithmUnsupported},
		{name: "Unknown", value: "crc32", wantErr: errAlgorithmUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Algorithm

			err := a.Set(tt.value)
			if got, want := err, tt.wantErr; !errors.Is(got, want) {
				t.Fatalf("got error %v, want %v", got, want)
			}
			if err != nil {
				return
			}

			if got, want := a, tt.want; got != want {
				t.Errorf("got algorithm %v, want %v", got, want)
			}
		})
	}
}

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		name string
		a    Algorithm
		want string
	}{
		{name: "MD5", a: MD5, want: "md5"},
		{name: "SHA1", a: SHA1, want: "sha1"},
		{name: "SHA256", a: SHA256, want: "sha256"},
		{name: "SHA384", a: SHA384, want: "sha384"},
		{name: "SHA512", a: SHA512, want: "sha512"},
		{name: "Zero", a: Algorithm{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.a.String(), tt.want; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestFileDigestString(t *testing.T) {
	fd := FileDigest{
		Algorithm: SHA256,
		Value:     []byte{0xde, 0xad, 0xbe, 0xef},
		Path:      "dir/file.txt",
	}

	if got, want := fd.String(), "deadbeef  dir/file.txt"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
