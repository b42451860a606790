// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package securo

import (
	"github.com/spf13/cobra"
)

// getGpg returns a command that verifies a detached GPG signature over a file.
func (c *command) getGpg() *cobra.Command {
	var (
		keyPath  string
		sigPath  string
		filePath string
	)

	cmd := &cobra.Command{
		Use:   "gpg",
		Short: "Verify detached GPG signature",
		Long: `Verify the authenticity of a file against a detached GPG signature, installing
GnuPG on demand and importing the supplied public key first.`,
		Example: c.opts.rootPath + " gpg --signing-key release.asc --signature app.tar.gz.sig --file app.tar.gz",
		Args:    cobra.ExactArgs(0),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.VerifySignature(cmd.Context(), keyPath, sigPath, filePath)
		},
		DisableFlagsInUseLine: true,
	}

	cmd.Flags().StringVar(&keyPath, "signing-key", "", "path to the public key to verify with")
	cmd.Flags().StringVar(&sigPath, "signature", "", "path to the detached signature file")
	cmd.Flags().StringVar(&filePath, "file", "", "path to the file to validate")

	cmd.MarkFlagRequired("signing-key")
	cmd.MarkFlagRequired("signature")
	cmd.MarkFlagRequired("file")

	return cmd
}
