// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package gpg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFakeBinary(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gpg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEnsureInstalledAlreadyPresent(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	t.Cleanup(srv.Close)

	ran := false
	tool, err := NewTool(
		OptToolPath(writeFakeBinary(t)),
		OptToolInstallerURL(srv.URL),
		OptToolHTTPClient(srv.Client()),
		OptToolRunner(func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			ran = true
			return nil, nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := tool.EnsureInstalled(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Idempotent bootstrap: no download, no installer execution.
	if hits != 0 {
		t.Errorf("got %v HTTP requests, want 0", hits)
	}
	if ran {
		t.Error("installer was executed")
	}
}

func TestEnsureInstalledDownloadsAndRuns(t *testing.T) {
	installerBody := []byte("fake installer payload")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(installerBody)
	}))
	t.Cleanup(srv.Close)

	downloadDir := t.TempDir()

	var gotName string
	var gotArgs []string
	tool, err := NewTool(
		OptToolPath(filepath.Join(t.TempDir(), "missing", "gpg")),
		OptToolInstallerURL(srv.URL),
		OptToolDownloadDir(downloadDir),
		OptToolHTTPClient(srv.Client()),
		OptToolRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args

			b, err := os.ReadFile(name)
			if err != nil {
				return nil, err
			}
			if got, want := string(b), string(installerBody); got != want {
				t.Errorf("got installer contents %q, want %q", got, want)
			}
			return nil, nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := tool.EnsureInstalled(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(gotName, downloadDir) {
		t.Errorf("installer %v not in download dir %v", gotName, downloadDir)
	}
	if got, want := len(gotArgs), 1; got != want {
		t.Fatalf("got %v installer args, want %v", got, want)
	}
	if got, want := gotArgs[0], "/S"; got != want {
		t.Errorf("got installer arg %v, want %v", got, want)
	}

	// The downloaded installer is removed after it runs.
	if _, err := os.Stat(gotName); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("installer %v not cleaned up: %v", gotName, err)
	}
}

func TestEnsureInstalledDownloadFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	tool, err := NewTool(
		OptToolPath(filepath.Join(t.TempDir(), "missing", "gpg")),
		OptToolInstallerURL(srv.URL),
		OptToolDownloadDir(t.TempDir()),
		OptToolHTTPClient(srv.Client()),
		OptToolRunner(func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			t.Error("installer was executed")
			return nil, nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := tool.EnsureInstalled(context.Background()); err == nil {
		t.Error("unexpected success")
	}
}

func TestEnsureInstalledInstallerFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake installer payload"))
	}))
	t.Cleanup(srv.Close)

	tool, err := NewTool(
		OptToolPath(filepath.Join(t.TempDir(), "missing", "gpg")),
		OptToolInstallerURL(srv.URL),
		OptToolDownloadDir(t.TempDir()),
		OptToolHTTPClient(srv.Client()),
		OptToolRunner(func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte("installer exploded"), errors.New("exit status 1")
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	err = tool.EnsureInstalled(context.Background())
	if err == nil {
		t.Fatal("unexpected success")
	}
	if got, want := err.Error(), "installer exploded"; !strings.Contains(got, want) {
		t.Errorf("error %q does not contain installer output %q", got, want)
	}
}
