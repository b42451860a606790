// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package gpg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadEntity(t *testing.T) {
	got, err := readEntity(filepath.Join("testdata", "signing-key.asc"))
	if err != nil {
		t.Fatal(err)
	}

	want := entityInfo{
		fingerprint: "639FE3D26163333DE6B0788E06625EFFBC34D6DC",
		identity:    "Securo Test <securo@example.org>",
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(entityInfo{})); diff != "" {
		t.Errorf("entity mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEntityNotArmored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage")
	if err := os.WriteFile(path, []byte("not a key"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readEntity(path); err == nil {
		t.Error("unexpected success")
	}
}

func TestReadEntityNotExist(t *testing.T) {
	if _, err := readEntity(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("unexpected success")
	}
}

func TestImportKey(t *testing.T) {
	keyPath := filepath.Join("testdata", "signing-key.asc")

	tests := []struct {
		name    string
		out     string
		err     error
		wantErr bool
	}{
		{
			name: "OK",
			out:  "gpg: key 06625EFFBC34D6DC: public key \"Securo Test <securo@example.org>\" imported\n",
		},
		{
			name:    "InvocationFailure",
			out:     "gpg: can't open 'signing-key.asc'\n",
			err:     errors.New("exit status 2"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []string
			tool, err := NewTool(
				OptToolPath("gpg"),
				OptToolRunner(func(_ context.Context, _ string, args ...string) ([]byte, error) {
					gotArgs = args
					return []byte(tt.out), tt.err
				}),
			)
			if err != nil {
				t.Fatal(err)
			}

			err = tool.ImportKey(context.Background(), keyPath)
			if got, want := err != nil, tt.wantErr; got != want {
				t.Fatalf("got error %v, wantErr %v", err, want)
			}

			want := []string{"--import", keyPath}
			if diff := cmp.Diff(want, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
