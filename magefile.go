// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

//go:build mage
// +build mage

package main

import (
	"fmt"
	"time"

	"github.com/Dextroz/Securo/internal/pkg/git"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const mainPackage = "./cmd/securo"

// ldFlags returns linker flags that stamp version information into the binary.
func ldFlags(builtBy string) (string, error) {
	d, err := git.Describe(".")
	if err != nil {
		return "", err
	}

	version := "unknown"
	if v, err := d.Version(); err == nil {
		version = v.String()
	}

	state := "clean"
	if !d.IsClean() {
		state = "dirty"
	}

	return fmt.Sprintf(
		"-X main.version=%v -X main.commit=%v -X main.state=%v -X main.date=%v -X main.builtBy=%v",
		version,
		d.CommitHash(),
		state,
		d.CommitTime().UTC().Format(time.RFC3339),
		builtBy,
	), nil
}

// Build compiles the securo binary.
func Build() error {
	flags, err := ldFlags("mage")
	if err != nil {
		return err
	}
	return sh.RunV(mg.GoCmd(), "build", "-ldflags", flags, mainPackage)
}

// Install installs the securo binary to GOBIN.
func Install() error {
	flags, err := ldFlags("mage")
	if err != nil {
		return err
	}
	return sh.RunV(mg.GoCmd(), "install", "-ldflags", flags, mainPackage)
}

// Test runs all unit tests.
func Test() error {
	return sh.RunV(mg.GoCmd(), "test", "-race", "./...")
}

// Cover runs all unit tests, writing coverage profile to the specified path.
func Cover(path string) error {
	return sh.RunV(mg.GoCmd(), "test", "-race", "-coverprofile="+path, "./...")
}
