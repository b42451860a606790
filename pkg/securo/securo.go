// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

// Package securo adds securo commands to a parent cobra.Command.
package securo

import (
	"github.com/Dextroz/Securo/internal/app/securo"
	"github.com/spf13/cobra"
)

// commandOpts contains configured options.
type commandOpts struct {
	rootPath string
	appOpts  []securo.AppOpt
}

// CommandOpt are used to configure optional command behavior.
type CommandOpt func(*commandOpts) error

// OptAppOpts specifies options to configure the app with.
func OptAppOpts(opts ...securo.AppOpt) CommandOpt {
	return func(co *commandOpts) error {
		co.appOpts = append(co.appOpts, opts...)
		return nil
	}
}

// command describes the securo command tree.
type command struct {
	opts commandOpts
	app  *securo.App
}

// initApp initializes the app, directing output to cmd.
func (c *command) initApp(cmd *cobra.Command, _ []string) error {
	opts := []securo.AppOpt{securo.OptAppOutput(cmd.OutOrStdout())}
	opts = append(opts, c.opts.appOpts...)

	app, err := securo.New(opts...)
	c.app = app
	return err
}

// AddCommands adds securo commands to cmd according to opts.
//
// The gpg and hash commands correspond to the tool's two mutually exclusive
// modes: detached signature verification, and file or directory digest
// calculation.
func AddCommands(cmd *cobra.Command, opts ...CommandOpt) error {
	c := command{
		opts: commandOpts{
			rootPath: cmd.CommandPath(),
		},
	}

	for _, opt := range opts {
		if err := opt(&c.opts); err != nil {
			return err
		}
	}

	cmd.AddCommand(
		c.getGpg(),
		c.getHash(),
	)

	return nil
}
