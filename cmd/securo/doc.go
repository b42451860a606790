// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

/*
Securo is a security utility for file verification and hashing.

Two mutually exclusive modes are provided. The gpg mode verifies the
authenticity of a downloaded file against a detached GPG signature,
installing GnuPG on demand and importing a supplied public key before
verification. The hash mode calculates cryptographic digests of a file, or
of every file in a directory tree, with a selectable algorithm.
*/
package main
