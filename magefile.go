//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "glossyflash"
	mainPath   = "./cmd/glossyflash"
)

// Default target to run when none is specified
var Default = Build

// Build builds the glossyflash binary
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, mainPath)
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestShort runs the tests that need no display
func TestShort() error {
	return sh.RunV("go", "test", "-short", "./internal/session/...", "./internal/translation/...",
		"./internal/anki/...", "./internal/batch/...", "./internal/cli/...", "./internal/models/...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	if err := Build(); err != nil {
		return err
	}
	return os.Rename(binaryName, filepath.Join(gopath, "bin", binaryName))
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binaryName)
}
