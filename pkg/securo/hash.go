// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package securo

import (
	"strings"

	"github.com/Dextroz/Securo/pkg/digest"
	"github.com/spf13/cobra"
)

// getHashExamples returns hash command examples based on rootPath.
func getHashExamples(rootPath string) string {
	examples := []string{
		rootPath + " hash app.tar.gz",
		rootPath + " hash --algorithm sha512 ./dist",
	}
	return strings.Join(examples, "\n")
}

// getHash returns a command that calculates file digests.
func (c *command) getHash() *cobra.Command {
	algo := digest.SHA256

	cmd := &cobra.Command{
		Use:   "hash <path>",
		Short: "Calculate file digests",
		Long: `Calculate the digest of a file, or of every file in a directory tree, using
the selected hash algorithm.`,
		Example: getHashExamples(c.opts.rootPath),
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Hash(cmd.Context(), algo, args[0])
		},
		DisableFlagsInUseLine: true,
	}

	cmd.Flags().Var(&algo, "algorithm", "digest algorithm (one of sha1, sha256, sha384, sha512, md5)")

	return cmd
}
