// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/Dextroz/Securo/pkg/securo"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "unknown"
	date    = ""
	builtBy = ""
	commit  = ""
	state   = ""
)

func writeVersion(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Version:\t%v\n", version)

	if builtBy != "" {
		fmt.Fprintf(tw, "By:\t%v\n", builtBy)
	}

	if commit != "" {
		if state == "" {
			fmt.Fprintf(tw, "Commit:\t%v\n", commit)
		} else {
			fmt.Fprintf(tw, "Commit:\t%v (%v)\n", commit, state)
		}
	}

	if date != "" {
		fmt.Fprintf(tw, "Date:\t%v\n", date)
	}

	fmt.Fprintf(tw, "Runtime:\t%v (%v/%v)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return nil
}

func getVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display binary version and build info.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout())
		},
		DisableFlagsInUseLine: true,
	}
}

var errModeRequired = errors.New("a mode must be selected: see 'securo gpg' and 'securo hash'")

func main() {
	var verbose bool

	root := cobra.Command{
		Use:   "securo",
		Short: "securo is a security utility for file verification and hashing",
		Long: `Securo verifies the integrity and authenticity of downloaded files against
detached GPG signatures, and calculates cryptographic digests of files or
directory trees.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errModeRequired
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().
				Timestamp().
				Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable progress narration")

	root.AddCommand(getVersion())

	if err := securo.AddCommands(&root); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
