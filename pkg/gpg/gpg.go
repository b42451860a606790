// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

// Package gpg wraps an external GnuPG installation, providing on-demand
// installation, public key import, and detached signature verification.
package gpg

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"github.com/Dextroz/Securo/internal/pkg/httpclient"
)

// installerURL is the location the GnuPG installer is fetched from when no
// installation is found.
const installerURL = "https://files.gpg4win.org/gpg4win-latest.exe"

// runner executes an external process and returns its combined output,
// permitting test substitution for every subprocess the package spawns.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCombined executes the named program, blocking until it exits. There is
// no timeout beyond ctx; a hung process hangs the caller.
func runCombined(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// defaultPath returns the platform-appropriate location of the gpg binary.
func defaultPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files (x86)\GnuPG\bin\gpg.exe`
	}
	if path, err := exec.LookPath("gpg"); err == nil {
		return path
	}
	return "/usr/bin/gpg"
}

// toolOpts contains configured options.
type toolOpts struct {
	path         string
	installerURL string
	downloadDir  string
	silentArgs   []string
	run          runner
	client       *http.Client
}

// ToolOpt are used to configure optional tool behavior.
type ToolOpt func(*toolOpts) error

// OptToolPath specifies the path to the gpg binary.
func OptToolPath(path string) ToolOpt {
	return func(o *toolOpts) error {
		o.path = path
		return nil
	}
}

// OptToolInstallerURL specifies the URL the GnuPG installer is fetched from
// when no installation is found at the configured path.
func OptToolInstallerURL(url string) ToolOpt {
	return func(o *toolOpts) error {
		o.installerURL = url
		return nil
	}
}

// OptToolDownloadDir specifies the directory the installer is downloaded to.
func OptToolDownloadDir(dir string) ToolOpt {
	return func(o *toolOpts) error {
		o.downloadDir = dir
		return nil
	}
}

// OptToolRunner specifies that external processes be executed via run.
func OptToolRunner(run func(ctx context.Context, name string, args ...string) ([]byte, error)) ToolOpt {
	return func(o *toolOpts) error {
		o.run = run
		return nil
	}
}

// OptToolHTTPClient specifies the HTTP client used to fetch the installer.
func OptToolHTTPClient(c *http.Client) ToolOpt {
	return func(o *toolOpts) error {
		o.client = c
		return nil
	}
}

// Tool provides access to one GnuPG installation.
type Tool struct {
	opts toolOpts
}

// NewTool returns a new Tool configured with opts.
func NewTool(opts ...ToolOpt) (*Tool, error) {
	t := Tool{
		opts: toolOpts{
			path:         defaultPath(),
			installerURL: installerURL,
			downloadDir:  os.TempDir(),
			silentArgs:   []string{"/S"},
			run:          runCombined,
			client:       httpclient.Client(),
		},
	}

	for _, opt := range opts {
		if err := opt(&t.opts); err != nil {
			return nil, err
		}
	}

	return &t, nil
}

// Path returns the path to the gpg binary the tool is configured with.
func (t *Tool) Path() string {
	return t.opts.path
}
