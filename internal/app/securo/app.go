// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package securo

import (
	"io"
	"os"

	"github.com/Dextroz/Securo/pkg/gpg"
)

// appOpts contains configured options.
type appOpts struct {
	out io.Writer
	gpg []gpg.ToolOpt
}

// AppOpt are used to configure optional behavior.
type AppOpt func(*appOpts) error

// App holds state and configured options.
type App struct {
	opts appOpts
}

// OptAppOutput specifies that output should be written to w.
func OptAppOutput(w io.Writer) AppOpt {
	return func(o *appOpts) error {
		o.out = w
		return nil
	}
}

// OptAppGpg specifies options to configure the GnuPG tool with.
func OptAppGpg(opts ...gpg.ToolOpt) AppOpt {
	return func(o *appOpts) error {
		o.gpg = append(o.gpg, opts...)
		return nil
	}
}

// New creates a new App configured with opts.
func New(opts ...AppOpt) (*App, error) {
	a := App{
		opts: appOpts{
			out: os.Stdout,
		},
	}

	for _, opt := range opts {
		if err := opt(&a.opts); err != nil {
			return nil, err
		}
	}

	return &a, nil
}
